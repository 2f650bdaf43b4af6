package templating

import "strings"

// Minify compacts a rendered document: it strips leading whitespace from
// every line, collapses runs of line breaks into a single break, trims
// the whole document, and finally removes every remaining HTML comment,
// multi-line ones included. The steps run in exactly that order.
//
// This is a textual transform with no notion of HTML structure, so it
// will happily rewrite whitespace-significant content such as the inside
// of a <pre> block. Known limitation.
func Minify(doc string) string {
	doc = indentRe.ReplaceAllString(doc, "")
	doc = lineBreakRe.ReplaceAllString(doc, "\n")
	doc = strings.TrimSpace(doc)
	return commentRe.ReplaceAllString(doc, "")
}
