package templating

import "regexp"

// The token grammar is line-oriented and non-nesting, so plain regexp
// scanning over the raw document is sufficient; no parser is involved.
// Whitespace around identifiers and inside parentheses is insignificant,
// and the trailing semicolon on call-style tokens is optional.
var (
	placeholderRe = regexp.MustCompile(`<!--\s*([A-Za-z_]\w*)\s*-->`)
	renderIfRe    = regexp.MustCompile(`(?s)<!--\s*renderIf\(\s*([A-Za-z_]\w*)\s*\)\s*;?\s*-->(.*?)<!--\s*endIf\(\s*\)\s*;?\s*-->`)
	includeRe     = regexp.MustCompile(`<!--\s*include\(\s*([^),\s][^),]*?)\s*\)\s*;?\s*-->`)
	includeIfRe   = regexp.MustCompile(`<!--\s*includeIf\(\s*([A-Za-z_]\w*)\s*,\s*([^),\s][^),]*?)\s*\)\s*;?\s*-->`)
	commentRe     = regexp.MustCompile(`(?s)<!--.*?-->`)
	indentRe      = regexp.MustCompile(`(?m)^[ \t]+`)
	lineBreakRe   = regexp.MustCompile(`[\r\n]+`)
)
