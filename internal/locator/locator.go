// Package locator finds the database file that applies to a directory.
package locator

import (
	"os"
	"path/filepath"
)

// DBName is the reserved filename of a todo database.
const DBName = ".todo.db.txt"

// maxDepth bounds the upward walk. Real paths never come close.
const maxDepth = 4096

// Locate returns the database path for startDir. It walks from startDir up to
// the filesystem root and returns the first regular file named DBName. When
// none exists it returns DBName inside startDir, which the caller creates.
func Locate(startDir string) string {
	path, _ := Find(startDir)
	return path
}

// Find is like Locate but also reports whether an existing database was found.
func Find(startDir string) (string, bool) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		start = filepath.Clean(startDir)
	}

	dir := start
	for range maxDepth {
		candidate := filepath.Join(dir, DBName)
		if isRegularFile(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return DefaultPath(start), false
}

// DefaultPath returns the path a new database in dir would have.
func DefaultPath(dir string) string {
	return filepath.Join(dir, DBName)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
