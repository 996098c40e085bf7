// Package cli implements the flowscii command-line interface.
//
// The CLI reads workflow documents (YAML or JSON), renders them as Unicode
// box diagrams, and writes the result to stdout or a file. It is built with
// cobra and logs through charmbracelet/log; all commands support --verbose
// (-v) for debug-level output.
//
// # Commands
//
//   - render: render a workflow document to diagram text
//   - preview: browse a rendered diagram in a scrollable pager
//   - completion: generate shell completion scripts
//
// # Example
//
//	import "github.com/flowscii/flowscii/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flowscii/flowscii/pkg/buildinfo"
	"github.com/flowscii/flowscii/pkg/pipeline"
)

// appName is the application name used for display and config lookup.
const appName = "flowscii"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Flowscii renders workflow diagrams as text",
		Long:         `Flowscii is a CLI tool that turns workflow definitions into Unicode box-drawing diagrams: nodes become typed boxes, connections become arrowed paths, all in plain monospaced text.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
