//go:build !windows

package paths

const caseInsensitive = false
