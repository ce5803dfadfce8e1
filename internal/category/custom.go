package category

import (
	"errors"
	"fmt"
	"slices"
)

// ErrExtensionExists rejects a custom extension that is already known,
// either as a custom extension or as a member of a built-in group.
var ErrExtensionExists = errors.New("extension already exists")

// AddCustom appends a user-defined extension to customs after normalizing it
// and returns the updated list. Empty input is ignored with added=false and
// no error.
func AddCustom(customs []string, ext string) (updated []string, added bool, err error) {
	ext = NormalizeExt(ext)
	if ext == "" {
		return customs, false, nil
	}
	if slices.Contains(customs, ext) || IsBuiltin(ext) {
		return customs, false, fmt.Errorf("%w: %s", ErrExtensionExists, ext)
	}
	return append(slices.Clone(customs), ext), true, nil
}
