package report

import (
	"fmt"
	"io"

	"github.com/nxkit/nxreport/internal/printer"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Formatter renders a Result.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// Write renders result to w.
func (f *Formatter) Write(w io.Writer, result *Result) error {
	switch f.format {
	case FormatJSON:
		data, err := FormatJSONDocument(result)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		printer.Fprint(w, printer.Message{Title: Title, BodyLines: BodyLines(result)})
		return nil
	}
}

// BodyLines returns the text report lines: environment facts, one line
// per watch-list package, the separator, then community plugins.
func BodyLines(result *Result) []string {
	lines := append(result.Versions.Facts.Lines(), "")

	for _, p := range result.Versions.Packages {
		lines = append(lines, fmt.Sprintf("%s : %s", printer.Success(p.Name), printer.Bold(p.Version)))
	}

	lines = append(lines, Separator, "Community plugins:")
	for _, p := range result.Plugins {
		lines = append(lines, fmt.Sprintf("\t %s: %s", printer.Success(p.Package), printer.Bold(p.VersionString())))
	}

	return lines
}

// FormatJSONDocument builds the JSON form of the report. Keys are written
// in a fixed order. A plugin whose manifest declares "version": null keeps
// the null; one with no version field has no "version" key.
func FormatJSONDocument(result *Result) ([]byte, error) {
	facts := result.Versions.Facts
	doc := []byte(`{}`)

	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}
	setRaw := func(path, raw string) {
		if err != nil {
			return
		}
		doc, err = sjson.SetRawBytes(doc, path, []byte(raw))
	}

	set("node", facts.NodeVersion)
	set("os", facts.OS)
	set("arch", facts.Arch)
	set("packageManager.name", facts.PackageManager.String())
	set("packageManager.version", facts.PackageManagerVersion)

	setRaw("packages", `[]`)
	for _, p := range result.Versions.Packages {
		set("packages.-1", map[string]string{"name": p.Name, "version": p.Version})
	}

	setRaw("communityPlugins", `[]`)
	for _, p := range result.Plugins {
		entry := map[string]any{"package": p.Package}
		switch {
		case p.Version != nil:
			entry["version"] = *p.Version
		case p.NullVersion:
			entry["version"] = nil
		}
		set("communityPlugins.-1", entry)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to build JSON report: %w", err)
	}

	return pretty.Pretty(doc), nil
}
