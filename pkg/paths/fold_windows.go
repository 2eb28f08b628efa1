//go:build windows

package paths

// NTFS path comparison is case-insensitive by default.
const caseInsensitive = true
