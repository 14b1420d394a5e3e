// Package render compiles a primary template and a set of named include
// templates against the merged value documents.
//
// Templates use the Jinja2 dialect implemented by MiniJinja:
//
//	variant: {{ node.host_variant }}
//	files:
//	{% include "hostname_file" %}
//
// Every Compile call builds its own template environment, registers the
// includes and then the primary template under MainTemplateName, renders
// the primary and discards the environment. Nothing is shared between
// calls, so a Compositor may be used from several goroutines at once.
//
// Failures are reported as *errors.Error values with one of the codes
// ErrContextBuild, ErrNameCollision, ErrTemplateLoad or ErrRender. Load
// failures carry the template name under errors.DetailTemplate.
package render
