package check

import (
	"fmt"
	"runtime"
	"strings"
)

// callSite returns a short "pkg/file.go:42" label for the frame skip
// levels above the caller of callSite.
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", shortPath(file), line)
}

// shortPath trims an absolute file path to its last two segments, so
// failure messages stay readable regardless of build machine layout.
func shortPath(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	parts := strings.Split(path, "/")
	if len(parts) <= 2 {
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
