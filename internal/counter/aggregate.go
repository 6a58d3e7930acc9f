package counter

import "path/filepath"

// DirectoryCount is the line sum of the matching files directly inside one
// directory.
type DirectoryCount struct {
	Path  string
	Files int
	Lines int
}

// Progress is called after each file is counted.
type Progress func(path string, lines int)

// Aggregate counts every file directly inside each of dirs whose extension
// is in extensions. The first file that fails to count aborts the pass and
// no partial counts are returned.
func Aggregate(dirs, extensions []string, progress Progress) ([]DirectoryCount, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[ext] = true
	}

	counts := make([]DirectoryCount, 0, len(dirs))
	for _, dir := range dirs {
		dc := DirectoryCount{Path: dir}
		if len(wanted) > 0 {
			entries, err := readDir(dir)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if !isFile(dir, e) {
					continue
				}
				ext, ok := Extension(e.Name())
				if !ok || !wanted[ext] {
					continue
				}
				path := filepath.Join(dir, e.Name())
				n, err := CountLines(path)
				if err != nil {
					return nil, err
				}
				if progress != nil {
					progress(path, n)
				}
				dc.Files++
				dc.Lines += n
			}
		}
		counts = append(counts, dc)
	}

	return counts, nil
}

// Total sums the per-directory line counts.
func Total(counts []DirectoryCount) int {
	total := 0
	for _, c := range counts {
		total += c.Lines
	}
	return total
}
