package counter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ScanDirectories returns root followed by every directory beneath it in
// depth-first pre-order. Siblings are visited in lexical order.
//
// Symlinked directories are listed as entries but never descended into, the
// same way filepath.WalkDir treats them, so link loops cannot occur.
// A directory that cannot be listed fails the whole scan.
func ScanDirectories(root string) ([]string, error) {
	var dirs []string
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dirs = append(dirs, dir)

		entries, err := readDir(dir)
		if err != nil {
			return nil, err
		}

		// Push in reverse so the first child is popped next.
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].IsDir() {
				stack = append(stack, filepath.Join(dir, entries[i].Name()))
			}
		}
	}

	return dirs, nil
}

func readDir(dir string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, &PermissionError{Path: dir, Err: err}
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	return entries, nil
}

// isFile reports whether the entry is a regular file, following symlinks.
func isFile(dir string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DisplayPath trims path to start at the base name of root, so
// /home/me/proj/src shows as proj/src.
func DisplayPath(root, path string) string {
	base := filepath.Base(root)
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return base
	}
	return filepath.Join(base, rel)
}
