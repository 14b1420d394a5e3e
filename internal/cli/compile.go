package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tmplmerge/pkg/inputs"
	"github.com/arthur-debert/tmplmerge/pkg/logging"
	"github.com/arthur-debert/tmplmerge/pkg/render"
)

type compileOptions struct {
	includes  []string
	undefined string
}

// addCompileFlags makes the root command render TEMPLATE.
func addCompileFlags(rootCmd *cobra.Command, global *globalOptions) {
	opts := &compileOptions{}

	rootCmd.Flags().StringArrayVarP(&opts.includes, "include", "i", nil, MsgFlagInclude)
	rootCmd.Flags().StringVar(&opts.undefined, "undefined", "", MsgFlagUndefined)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCompile(cmd, args, global, opts)
	}
}

func runCompile(cmd *cobra.Command, args []string, global *globalOptions, opts *compileOptions) error {
	logger := logging.GetLogger("cli.compile")

	// Parse everything the flags carry before touching any file
	specs, err := inputs.ParseIncludeSpecs(opts.includes)
	if err != nil {
		return err
	}

	format, err := global.valuesFormat(cmd)
	if err != nil {
		return err
	}

	renderOpts := global.cfg.RenderOptions()
	if cmd.Flags().Changed("undefined") {
		mode, err := render.ParseUndefinedMode(opts.undefined)
		if err != nil {
			return err
		}
		renderOpts.Undefined = mode
	}

	templatePath := ""
	if len(args) > 0 {
		templatePath = args[0]
	}

	primary, err := inputs.ReadTemplate(templatePath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	includes, err := inputs.ReadIncludes(specs)
	if err != nil {
		return err
	}

	documents, err := inputs.ReadValueFiles(global.valueFiles, format)
	if err != nil {
		return err
	}

	logger.Info().
		Str("template", templatePath).
		Int("includes", len(includes)).
		Int("values", len(documents)).
		Str("undefined", string(renderOpts.Undefined)).
		Msg("Compiling template")

	output, err := render.New(renderOpts).Compile(primary, includes, documents)
	if err != nil {
		return fmt.Errorf(MsgErrCompile, err)
	}

	return inputs.WriteOutput(global.output, cmd.OutOrStdout(), output)
}
