// Package platform implements the OS primitive boundary consumed by the
// link core: link creation calls, path and volume metadata queries, and
// the platform-specific mapping from raw OS errors onto the reason
// taxonomy.
//
// The Windows implementation covers all three link kinds, creating
// junctions through mount-point reparse buffers. Other platforms get the
// hard-link and symlink paths via the portable os primitives; junction
// operations fail with UNSUPPORTED_PLATFORM so the core and its callers
// behave the same everywhere.
package platform

// Native is the operating system's own implementation of the primitive
// boundary. It satisfies link.Primitives and inspect.Querier.
type Native struct{}

// New returns the native primitives for the current platform.
func New() *Native {
	return &Native{}
}
