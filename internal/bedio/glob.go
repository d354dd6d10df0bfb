package bedio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPaths expands glob patterns (doublestar syntax: "**" recurses
// through directories, unlike path/filepath.Glob) among paths into a
// sorted, deduplication-free list of file paths. Arguments with no glob
// metacharacters pass through unchanged, so a single concrete filename
// never depends on matching anything on disk.
func ExpandPaths(paths ...string) ([]string, error) {
	var result []string

	for _, p := range paths {
		if !strings.ContainsAny(p, "*?[") {
			result = append(result, p)
			continue
		}

		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("bedio: glob %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("bedio: glob %q matched no files", p)
		}
		result = append(result, matches...)
	}

	sort.Strings(result)
	return result, nil
}
