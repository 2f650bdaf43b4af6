package templating

// Substitute replaces every placeholder token whose key is present in the
// view model with the value's text form. Tokens whose key is absent are
// left byte-identical, internal whitespace included, so a later pass (or
// the host) can still see them. Substituted content is not re-scanned;
// a value that happens to contain placeholder markup stays as-is within
// this pass.
func Substitute(doc string, vm ViewModel) string {
	if doc == "" {
		return doc
	}
	return placeholderRe.ReplaceAllStringFunc(doc, func(token string) string {
		key := placeholderRe.FindStringSubmatch(token)[1]
		v, ok := vm[key]
		if !ok {
			return token
		}
		return Stringify(v)
	})
}
