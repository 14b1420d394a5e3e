package render

import (
	"sort"

	minijinja "github.com/mitsuhiko/minijinja/minijinja-go/v2"

	"github.com/arthur-debert/tmplmerge/pkg/errors"
	"github.com/arthur-debert/tmplmerge/pkg/logging"
	"github.com/arthur-debert/tmplmerge/pkg/merge"
	"github.com/arthur-debert/tmplmerge/pkg/values"
)

// MainTemplateName is the name the primary template is registered under.
// Includes may not use it.
const MainTemplateName = "main"

// Compositor renders templates with a fixed set of engine options.
type Compositor struct {
	opts Options
}

// New returns a Compositor using opts.
func New(opts Options) *Compositor {
	if opts.Undefined == "" {
		opts.Undefined = UndefinedStrict
	}
	return &Compositor{opts: opts}
}

// Options returns the options the compositor was created with.
func (c *Compositor) Options() Options {
	return c.opts
}

// Compile merges documents with DefaultOptions and renders primary.
func Compile(primary string, includes map[string]string, documents []values.Tree) (string, error) {
	return New(DefaultOptions()).Compile(primary, includes, documents)
}

// Compile merges documents into a context, registers includes and the
// primary template in a fresh environment and renders the primary. The
// first failure aborts the call; no partial output is returned.
func (c *Compositor) Compile(primary string, includes map[string]string, documents []values.Tree) (string, error) {
	logger := logging.GetLogger("render")
	done := logging.LogOperationStart(logger, "compile")
	defer done()

	tree := merge.Merge(documents)
	logger.Debug().Int("documents", len(documents)).Msg("merged value documents")

	ctx, err := BuildContext(tree)
	if err != nil {
		return "", err
	}

	env, err := c.environment(includes, primary)
	if err != nil {
		return "", err
	}

	tmpl, err := env.GetTemplate(MainTemplateName)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTemplateLoad, "cannot load main template").
			WithDetail(errors.DetailTemplate, MainTemplateName)
	}

	output, err := tmpl.Render(ctx)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "cannot render template")
	}

	logger.Debug().Int("bytes", len(output)).Msg("rendered template")
	return output, nil
}

// environment builds the call-scoped template namespace. Includes are
// registered in name order so the reported failure is deterministic when
// several are broken.
func (c *Compositor) environment(includes map[string]string, primary string) (*minijinja.Environment, error) {
	if _, ok := includes[MainTemplateName]; ok {
		return nil, errors.Newf(errors.ErrNameCollision,
			"included template name %q is reserved for the main template", MainTemplateName).
			WithDetail(errors.DetailTemplate, MainTemplateName)
	}

	env := minijinja.NewEnvironment()
	env.SetUndefinedBehavior(c.opts.Undefined.behavior())
	env.SetTrimBlocks(c.opts.TrimBlocks)
	env.SetLstripBlocks(c.opts.LstripBlocks)
	env.SetKeepTrailingNewline(!c.opts.StripTrailingNewline)

	names := make([]string, 0, len(includes))
	for name := range includes {
		names = append(names, name)
	}
	sort.Strings(names)

	logger := logging.GetLogger("render")
	for _, name := range names {
		if err := env.AddTemplate(name, includes[name]); err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "cannot load included template %s", name).
				WithDetail(errors.DetailTemplate, name)
		}
		logger.Trace().Str("template", name).Msg("registered include")
	}

	if err := env.AddTemplate(MainTemplateName, primary); err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateLoad, "cannot load main template").
			WithDetail(errors.DetailTemplate, MainTemplateName)
	}

	return env, nil
}
