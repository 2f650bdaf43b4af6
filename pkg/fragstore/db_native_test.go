//go:build !cgo_sqlite

package fragstore

import (
	_ "modernc.org/sqlite"
)

// testDriver selects the pure-Go sqlite driver for tests.
const testDriver = "sqlite"
