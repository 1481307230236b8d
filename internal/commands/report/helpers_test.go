package report

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/nxkit/nxreport/internal/config"
	"github.com/nxkit/nxreport/internal/core"
	"github.com/nxkit/nxreport/internal/printer"
	"github.com/urfave/cli/v3"
)

const wsRoot = "/ws"

type testEnv struct {
	fs     *core.MockFileSystem
	runner *core.MockCommandRunner
	stdout *bytes.Buffer
	logs   *bytes.Buffer
	opts   *Options
}

func newTestEnv(t *testing.T, files map[string]string) *testEnv {
	t.Helper()
	printer.SetNoColor(true)
	t.Cleanup(func() { printer.SetNoColor(false) })

	fsys := core.NewMockFileSystem()
	for path, content := range files {
		fsys.SetFile(filepath.Join(wsRoot, filepath.FromSlash(path)), []byte(content))
	}

	runner := core.NewMockCommandRunner()
	runner.Outputs["node --version"] = "v18.12.1"
	runner.Outputs["npm --version"] = "9.2.0"
	runner.Outputs["yarn --version"] = "1.22.19"

	env := &testEnv{
		fs:     fsys,
		runner: runner,
		stdout: &bytes.Buffer{},
		logs:   &bytes.Buffer{},
	}
	env.opts = &Options{
		FS:     fsys,
		Runner: runner,
		Stdout: env.stdout,
		Logger: log.New(env.logs),
		Getwd:  func() (string, error) { return filepath.Join(wsRoot, "apps", "web"), nil },
	}
	return env
}

func (e *testEnv) run(t *testing.T, cfg *config.Config, args ...string) error {
	t.Helper()
	app := &cli.Command{
		Name:     "nxreport",
		Commands: []*cli.Command{Run(cfg, e.opts)},
	}
	return app.Run(context.Background(), append([]string{"nxreport", "report"}, args...))
}

func pkg(name string) string {
	return "node_modules/" + name + "/package.json"
}
