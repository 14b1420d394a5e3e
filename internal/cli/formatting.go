package cli

import (
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tmplmerge/pkg/ui"
)

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return ui.Bold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      ui.Bold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
