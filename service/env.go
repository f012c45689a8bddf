package service

import "os"

// IsInteractiveEnvironment reports whether stderr is attached to a terminal
// that can render progress bars. CI environments and dumb terminals never
// qualify.
func IsInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
