package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/tmplmerge/pkg/inputs"
	"github.com/arthur-debert/tmplmerge/pkg/merge"
	"github.com/arthur-debert/tmplmerge/pkg/values"
)

func newMergeCmd(global *globalOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: MsgMergeShort,
		Long:  MsgMergeLong,
		Example: `  # Show the context node01 templates will see
  tmplmerge merge -a common.json -a node01.json

  # As YAML
  tmplmerge merge -a common.yaml -a node01.yaml --output-format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := global.valuesFormat(cmd)
			if err != nil {
				return err
			}

			documents, err := inputs.ReadValueFiles(global.valueFiles, format)
			if err != nil {
				return err
			}

			encoded, err := encodeTree(merge.Merge(documents), outputFormat)
			if err != nil {
				return fmt.Errorf(MsgErrEncode, err)
			}

			return inputs.WriteOutput(global.output, cmd.OutOrStdout(), encoded)
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output-format", "json", MsgFlagOutputFormat)

	return cmd
}

func encodeTree(tree values.Tree, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(values.ResolveNumbers(tree))
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}
