// Package ui renders tmplmerge's own messages (errors, help) for the
// terminal. Rendered templates never pass through here: they are written
// byte for byte by package inputs.
//
// Styles are defined in styles.yaml with adaptive light/dark colors and
// looked up by semantic name:
//
//	ui.Style("Error").Render("Error:")
//
// When the output is not a terminal, NO_COLOR is set, or the terminal
// reports no color support, all styling is dropped.
package ui
