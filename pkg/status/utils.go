package status

import (
	"errors"
	"io/fs"
)

// isNotExist checks if an error indicates a file doesn't exist
func isNotExist(err error) bool {
	return err != nil && errors.Is(err, fs.ErrNotExist)
}
