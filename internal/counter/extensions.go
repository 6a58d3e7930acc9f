package counter

import "strings"

// Extension returns the part of name after its last dot. Names without a
// dot have no extension.
func Extension(name string) (string, bool) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "", false
	}
	return name[idx+1:], true
}

// ScanExtensions collects the distinct extensions of the files directly
// inside dirs, in order of first discovery.
func ScanExtensions(dirs []string) ([]string, error) {
	seen := make(map[string]bool)
	var extensions []string

	for _, dir := range dirs {
		entries, err := readDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !isFile(dir, e) {
				continue
			}
			ext, ok := Extension(e.Name())
			if !ok || seen[ext] {
				continue
			}
			seen[ext] = true
			extensions = append(extensions, ext)
		}
	}

	return extensions, nil
}
