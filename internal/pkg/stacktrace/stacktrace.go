// Package stacktrace condenses raw goroutine stack dumps into the frames that
// belong to this repository, for compact panic logging.
package stacktrace

import "strings"

// InternalPaths extracts the frames under an internal/ directory from a raw
// stack trace, trimmed to "internal/<pkg>/<file>.go:<line>".
func InternalPaths(stack []byte) []string {
	var paths []string

	for line := range strings.SplitSeq(string(stack), "\n") {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, "/internal/")
		if idx == -1 || !strings.Contains(line, ".go:") {
			continue
		}

		frame := line[idx+1:]
		if end := strings.IndexByte(frame, ' '); end != -1 {
			frame = frame[:end]
		}

		paths = append(paths, frame)
	}

	return paths
}
