package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/flowscii/flowscii/pkg/config"
	"github.com/flowscii/flowscii/pkg/errors"
	"github.com/flowscii/flowscii/pkg/io"
	"github.com/flowscii/flowscii/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path; empty writes to stdout
	yamlMode   bool   // force the YAML decoder regardless of extension
	jsonMode   bool   // force the JSON decoder regardless of extension
	configPath string // explicit config file path
	wrap       int    // description wrap width; 0 defers to config/default
	gutter     int    // slot padding; -1 defers to config/default
}

// renderCommand creates the render command.
//
// Defaults come from three layers: built-in values, then .flowscii.toml,
// then explicit flags, each overriding the previous.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a workflow document as a text diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.yamlMode, "yaml", false, "treat the input as YAML regardless of extension")
	cmd.Flags().BoolVar(&opts.jsonMode, "json", false, "treat the input as JSON regardless of extension")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: .flowscii.toml in the working directory)")
	cmd.Flags().IntVar(&opts.wrap, "wrap", 0, "description wrap width in columns")
	cmd.Flags().IntVar(&opts.gutter, "gutter", -1, "horizontal padding around each box")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	pipeOpts, err := c.pipelineOptions(input, opts)
	if err != nil {
		return err
	}

	p := newProgress(loggerFromContext(ctx))
	result, err := c.newRunner().Execute(ctx, pipeOpts)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	p.done("Rendered workflow")

	if err := io.Export(opts.output, result.Text); err != nil {
		return err
	}

	if opts.output != "" && opts.output != "-" {
		printSuccess("Wrote diagram")
		printFile(opts.output)
		printStats(result.Stats.NodeCount, result.Stats.ConnectionCount, result.Stats.LayerCount)
	}
	return nil
}

// pipelineOptions merges flags with the config file into pipeline options.
func (c *CLI) pipelineOptions(input string, opts *renderOpts) (pipeline.Options, error) {
	format, err := selectFormat(opts)
	if err != nil {
		return pipeline.Options{}, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}

	wrap := opts.wrap
	if wrap <= 0 {
		wrap = cfg.WrapWidth
	}
	gutter := opts.gutter
	if gutter < 0 {
		gutter = -1
		if cfg.Gutter > 0 {
			gutter = cfg.Gutter
		}
	}

	return pipeline.Options{
		Input:       input,
		Format:      format,
		Output:      opts.output,
		WrapWidth:   wrap,
		Gutter:      gutter,
		DefaultType: cfg.DefaultType,
		Logger:      c.Logger,
	}, nil
}

func selectFormat(opts *renderOpts) (io.Format, error) {
	switch {
	case opts.yamlMode && opts.jsonMode:
		return "", errors.New(errors.ErrCodeInvalidFormat, "--yaml and --json are mutually exclusive")
	case opts.yamlMode:
		return io.FormatYAML, nil
	case opts.jsonMode:
		return io.FormatJSON, nil
	default:
		return io.FormatAuto, nil
	}
}
