/*
Package templating implements a minimal HTML templating engine driven by
comment tokens. It substitutes named placeholders with view model values,
conditionally renders content blocks, pulls in file fragments either
unconditionally or conditionally, and compacts the resulting markup.

The template language is a handful of HTML comment forms:

	<!-- key -->                                    placeholder substitution
	<!-- renderIf(key); --> ... <!-- endIf(); -->   conditional block
	<!-- include(path); -->                         unconditional inclusion
	<!-- includeIf(key, path); -->                  conditional inclusion

Any other HTML comment is passed through unresolved until minification
removes it. There are no loops, no nested conditionals, and no expression
language; a token holds either a bare view model key or a key/path pair.
File contents are read through an injectable FileReader, so includes can
come from the filesystem, an in-memory filesystem, or a fragment store.
*/
package templating
