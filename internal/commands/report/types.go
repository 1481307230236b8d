package report

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/nxkit/nxreport/internal/community"
	"github.com/nxkit/nxreport/internal/core"
	"github.com/nxkit/nxreport/internal/logging"
	"github.com/nxkit/nxreport/internal/versions"
)

// Title heads the text report.
const Title = "Report complete - copy this into the issue template"

// Separator divides package versions from community plugins.
const Separator = "---------------------------------------"

// OutputFormat controls how the report is rendered.
type OutputFormat string

const (
	// FormatText outputs the human-readable block.
	FormatText OutputFormat = "text"

	// FormatJSON outputs a machine-readable document.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to OutputFormat, defaulting to text.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Result is everything a report renders.
type Result struct {
	Versions *versions.Report
	Plugins  []community.Plugin
}

// Options carries the collaborators the command runs with. Zero fields
// are filled with production defaults by withDefaults.
type Options struct {
	FS     core.FileSystem
	Runner core.CommandRunner
	Stdout io.Writer
	Logger *log.Logger
	Getwd  func() (string, error)
}

func (o *Options) withDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.FS == nil {
		o.FS = core.NewOSFileSystem()
	}
	if o.Runner == nil {
		o.Runner = core.NewExecRunner()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = logging.New(os.Stderr, false)
	}
	if o.Getwd == nil {
		o.Getwd = os.Getwd
	}
	return o
}
