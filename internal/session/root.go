package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrPathNotFound = errors.New("directory does not exist")
	ErrNotDirectory = errors.New("path is not a directory")
)

// ResolveRoot turns user input into the absolute root directory to scan.
// Relative input is taken relative to base and a leading "~" expands to home.
func ResolveRoot(base, home, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrPathNotFound
	}

	if input == "~" {
		input = home
	} else if strings.HasPrefix(input, "~"+string(filepath.Separator)) || strings.HasPrefix(input, "~/") {
		input = filepath.Join(home, input[2:])
	}

	path := input
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", input, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrPathNotFound)
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	return path, nil
}
