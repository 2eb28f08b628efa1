package link

import (
	"github.com/arthur-debert/linkshell/pkg/errors"
)

// Primitives is the OS boundary the core depends on. Production code passes
// platform.New(); tests pass a fake. Argument order mirrors the underlying
// Windows calls: the new entry first, the existing one second.
//
// Permission is never pre-checked through this interface: Windows link
// permission semantics are only authoritatively known at syscall time, so
// the create calls themselves are the permission check and ClassifyError
// turns their refusal into PERMISSION_DENIED.
type Primitives interface {
	// CreateHardLink creates a second directory entry at target for the
	// file at source.
	CreateHardLink(target, source string) error

	// CreateSymlink creates a symbolic link at target pointing to source.
	// isDir must match what source classifies as at creation time; the
	// Windows primitive takes a directory-vs-file mode flag.
	CreateSymlink(target, source string, isDir bool) error

	// CreateJunction creates a directory junction at target pointing to
	// the directory at source.
	CreateJunction(target, source string) error

	// QueryPathType classifies a path, following symbolic links. A path
	// that does not exist is (NotFound, nil); errors are reserved for
	// metadata reads that actually failed.
	QueryPathType(path string) (PathType, error)

	// QueryVolumeID identifies the volume containing a path. For paths
	// that do not exist yet it identifies the volume of the closest
	// existing ancestor.
	QueryVolumeID(path string) (VolumeID, error)

	// ClassifyError maps a primitive's failure onto the reason taxonomy.
	// The primitive's own error is authoritative: a pre-flight check may
	// have passed and still lost the race to another process.
	ClassifyError(err error) errors.ErrorCode
}
