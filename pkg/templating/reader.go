package templating

import (
	"context"
	"os"

	"github.com/spf13/afero"
)

// FileReader is the capability the include passes use to load fragment
// content. It receives the already-resolved path (base directory joined
// with the token's path) and returns the file's text or an error. Readers
// are passed explicitly to NewEngine rather than held in package state,
// so concurrent renders and tests never interfere through a shared
// configuration. A reader shared across concurrent renders must itself
// be safe for concurrent use.
type FileReader func(ctx context.Context, path string) (string, error)

// OSReader returns a FileReader backed by the process filesystem.
func OSReader() FileReader {
	return func(_ context.Context, path string) (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// NewFsReader returns a FileReader over an afero filesystem. This is the
// usual way to feed the engine from something other than the host disk:
// an in-memory filesystem in tests, or any other afero backend.
func NewFsReader(fsys afero.Fs) FileReader {
	return func(_ context.Context, path string) (string, error) {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
