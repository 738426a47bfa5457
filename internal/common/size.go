package common

import (
	"fmt"
	"os"

	"mlops-pipeline/internal/errs"

	"github.com/spf13/afero"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// GetSize reports the size of a file, or the total size of the regular files under a directory
func GetSize(fs afero.Fs, path string) (string, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return "", errs.FromFS("get size", path, err)
	}

	if !info.IsDir() {
		return FormatSize(info.Size()), nil
	}

	var total int64
	err = afero.Walk(fs, path, func(_ string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.Mode().IsRegular() {
			total += fi.Size()
		}
		return nil
	})
	if err != nil {
		return "", errs.FromFS("get size", path, err)
	}
	return FormatSize(total), nil
}

// FormatSize renders n bytes in the largest 1024-based unit that keeps the value under 1024
func FormatSize(n int64) string {
	size := float64(n)
	for _, unit := range sizeUnits {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f PB", size)
}
