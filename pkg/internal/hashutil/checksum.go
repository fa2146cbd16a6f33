package hashutil

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/zeebo/blake3"
)

// FileChecksum calculates the BLAKE3 checksum of a file read through fsys
func FileChecksum(fsys types.FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := blake3.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("blake3:%x", hash.Sum(nil)), nil
}
