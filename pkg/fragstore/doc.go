/*
Package fragstore provides a SQLite-backed source of template fragments.
It implements the non-filesystem side of the templating package's
FileReader seam: fragments are stored as path/content rows, and
Store.Reader adapts the store so include tokens resolve against the
database instead of a directory tree. A missing row behaves like a
missing file and is recovered by the include passes.
*/
package fragstore
