package templating

import (
	"context"
	"log/slog"
)

// Engine ties the rewrite passes to the two external collaborators they
// need: a FileReader for include content and a logger for the read
// failures the include passes recover from. An Engine is immutable after
// construction and safe for concurrent renders as long as its reader is.
type Engine struct {
	logger *slog.Logger
	reader FileReader
}

// NewEngine returns an Engine that loads include content through reader
// and reports read failures to logger. A nil logger discards them.
func NewEngine(logger *slog.Logger, reader FileReader) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{logger: logger, reader: reader}
}

// Render runs the full pipeline over a document: conditional blocks,
// placeholder substitution, conditional includes, unconditional includes,
// then conditional blocks and substitution once more, and finally
// minification. The second renderIf/substitute pair is deliberate:
// included fragments may carry their own conditional or placeholder
// markup, which is resolved against the same view model. Content
// introduced by that second pass is not re-scanned for further includes.
//
// Render never fails; the only recoverable fault, a file read error, is
// handled inside the include passes.
func (e *Engine) Render(ctx context.Context, doc string, vm ViewModel, baseDir string) string {
	doc = RenderIf(doc, vm)
	doc = Substitute(doc, vm)
	doc = e.IncludeIf(ctx, doc, vm, baseDir)
	doc = e.Include(ctx, doc, baseDir)
	doc = RenderIf(doc, vm)
	doc = Substitute(doc, vm)
	return Minify(doc)
}
