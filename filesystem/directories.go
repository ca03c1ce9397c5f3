package filesystem

import (
	"os"
	"time"
)

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0777)
}

func FileModifiedTime(path string) (mod time.Time, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return
	}

	mod = fi.ModTime()

	return
}

// IsUpToDate reports whether target exists and was modified after source.
func IsUpToDate(source, target string) bool {
	targetMod, err := FileModifiedTime(target)
	if err != nil {
		return false
	}

	sourceMod, err := FileModifiedTime(source)
	if err != nil {
		return false
	}

	return targetMod.After(sourceMod)
}
