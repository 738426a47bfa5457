package common

import (
	"path/filepath"
	"strings"
)

// GetFileExtension returns the suffix of the last path element without its dot.
// Dotfiles such as ".bashrc" and names ending in a dot have no extension.
func GetFileExtension(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}
