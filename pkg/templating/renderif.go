package templating

// RenderIf resolves conditional block spans delimited by renderIf(key)
// and the nearest following endIf() token. A truthy key keeps the inner
// content and drops both delimiters; a falsy or absent key drops the
// whole span. Spans for different keys are evaluated independently
// against the same view model.
//
// Blocks do not nest: the span ends at the first endIf() after its
// opener, so a renderIf inside another block pairs with that nearest
// endIf and any leftover delimiter is passed through verbatim.
func RenderIf(doc string, vm ViewModel) string {
	if doc == "" {
		return doc
	}
	return renderIfRe.ReplaceAllStringFunc(doc, func(span string) string {
		m := renderIfRe.FindStringSubmatch(span)
		if vm.Truthy(m[1]) {
			return m[2]
		}
		return ""
	})
}
