package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tmplmerge/internal/version"
	"github.com/arthur-debert/tmplmerge/pkg/cobrax/topics"
	"github.com/arthur-debert/tmplmerge/pkg/config"
	"github.com/arthur-debert/tmplmerge/pkg/logging"
	"github.com/arthur-debert/tmplmerge/pkg/values"
)

// globalOptions are the flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
	valueFiles []string
	format     string
	output     string

	cfg *config.Config
}

// valuesFormat returns the --format flag when given, else the configured one.
func (o *globalOptions) valuesFormat(cmd *cobra.Command) (values.Format, error) {
	if cmd.Flags().Changed("format") {
		return values.ParseFormat(o.format)
	}
	return o.cfg.ValuesFormat(), nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "tmplmerge [flags] [TEMPLATE]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			opts.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringArrayVarP(&opts.valueFiles, "values", "a", nil, MsgFlagValues)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	addCompileFlags(rootCmd, opts)

	rootCmd.AddCommand(newMergeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	topicOpts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tmplmerge version %s\n", version.Version)
			fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			fmt.Fprintf(out, "Built:  %s\n", version.Date)
		},
	}
}
