//go:build cgo_sqlite

package fragstore

import (
	_ "github.com/mattn/go-sqlite3"
)

// testDriver selects the cgo sqlite driver for tests.
const testDriver = "sqlite3"
