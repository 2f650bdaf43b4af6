package templating

import (
	"context"
	"path/filepath"
	"strings"
)

// Include resolves every include(path) token against the base directory
// and replaces it with the referenced file's content. All matches are
// collected up front, reads are issued sequentially, and then every
// occurrence of each token string is replaced at once; a token that
// appears multiple times resolves everywhere to the content of its first
// lookup. A failed read substitutes empty content and is reported through
// the engine's logger; it never fails the pass.
func (e *Engine) Include(ctx context.Context, doc, baseDir string) string {
	if doc == "" {
		return doc
	}
	matches := includeRe.FindAllStringSubmatch(doc, -1)
	if matches == nil {
		return doc
	}

	type fragment struct {
		token   string
		content string
	}
	var fragments []fragment
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		token, path := m[0], m[1]
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}

		resolved := filepath.Join(baseDir, path)
		content, err := e.reader(ctx, resolved)
		if err != nil {
			e.logger.Warn("failed to read included file", "op", "include", "path", resolved, "error", err)
			content = ""
		}
		fragments = append(fragments, fragment{token: token, content: content})
	}

	for _, f := range fragments {
		doc = strings.ReplaceAll(doc, f.token, f.content)
	}
	return doc
}

// IncludeIf resolves includeIf(key, path) tokens one at a time against
// the live document. A truthy key substitutes the file's content (empty
// on a logged read failure); a falsy or absent key substitutes empty
// content without ever touching the reader. Unlike Include, each
// replacement is applied immediately and scanning resumes from the
// position after it, so identical tokens are resolved per occurrence.
func (e *Engine) IncludeIf(ctx context.Context, doc string, vm ViewModel, baseDir string) string {
	pos := 0
	for pos < len(doc) {
		loc := includeIfRe.FindStringSubmatchIndex(doc[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		key := doc[pos+loc[2] : pos+loc[3]]
		path := doc[pos+loc[4] : pos+loc[5]]

		var content string
		if vm.Truthy(key) {
			resolved := filepath.Join(baseDir, path)
			c, err := e.reader(ctx, resolved)
			if err != nil {
				e.logger.Warn("failed to read included file", "op", "includeIf", "path", resolved, "error", err)
			} else {
				content = c
			}
		}

		doc = doc[:start] + content + doc[end:]
		pos = start + len(content)
	}
	return doc
}
