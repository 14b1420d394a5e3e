package cli

import (
	"embed"
	"io/fs"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort    = "Render a template against merged JSON values"
	MsgMergeShort   = "Print the merged values without rendering"
	MsgMergeLong    = "Merge prints the context a template would be rendered against, after all value files have been merged in order."
	MsgVersionShort = "Print version information"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrCompile    = "failed to compile template: %w"
	MsgErrEncode     = "failed to encode merged values: %w"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagValues       = "Value file to merge into the template context (repeatable, later files win)"
	MsgFlagInclude      = "Named template to make available to {% include %} as NAME=PATH (repeatable)"
	MsgFlagOutput       = "Write the result to FILE instead of standard output"
	MsgFlagFormat       = "Value file format: auto, json, jsonc, yaml or toml"
	MsgFlagConfig       = "Read configuration from FILE instead of the user config file"
	MsgFlagUndefined    = "How missing variables are handled: strict, semi-strict, lenient or chainable"
	MsgFlagOutputFormat = "Encoding of the merged values: json or yaml"

	MsgRootExample = `  # Render node.yaml.j2 with common values overridden per node
  tmplmerge -a common.json -a node01.json node.yaml.j2

  # Make a named template available to {% include "hostname_file" %}
  tmplmerge -a values.yaml -i hostname_file=hostname.j2 -o node01.bu node.yaml.j2

  # Read the template from standard input
  cat node.yaml.j2 | tmplmerge -a values.toml`
)

var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/topics
	topicsFS embed.FS
)

// helpTopics returns the embedded help topics rooted at their directory.
func helpTopics() fs.FS {
	sub, err := fs.Sub(topicsFS, "msgs/topics")
	if err != nil {
		panic(err)
	}
	return sub
}
