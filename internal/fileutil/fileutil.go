package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// Overwrite replaces the content of an existing file in place. The file is
// truncated and rewritten through the same inode, so its mode and ownership
// are kept. A crash mid-write can leave the file partially written.
func Overwrite(path string, data []byte) error {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer out.Close()

	n, err := out.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("short write: wrote %d of %d bytes", n, len(data))
	}
	return out.Close()
}

// Digest returns the hex-encoded SHA256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
