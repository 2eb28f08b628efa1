//go:build !windows

package platform

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/link"
)

// CreateHardLink creates a second directory entry for the file at source.
func (n *Native) CreateHardLink(target, source string) error {
	return os.Link(source, target)
}

// CreateSymlink creates a symbolic link at target. Symlinks have no
// directory mode flag outside Windows; the recorded classification is
// accepted for interface parity and ignored.
func (n *Native) CreateSymlink(target, source string, _ bool) error {
	return os.Symlink(source, target)
}

// CreateJunction always fails: directory junctions are an NTFS reparse
// point construct with no equivalent here.
func (n *Native) CreateJunction(target, source string) error {
	return errors.New(errors.ErrUnsupportedPlatform,
		"directory junctions require Windows").
		WithDetail("source", source).
		WithDetail("target", target)
}

// QueryPathType classifies a path, following symbolic links. A dangling
// symlink therefore classifies as NotFound, matching the documented policy
// of classifying by the ultimate target.
func (n *Native) QueryPathType(path string) (link.PathType, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return link.NotFound, nil
		}
		return link.NotFound, err
	}
	if info.IsDir() {
		return link.Directory, nil
	}
	return link.File, nil
}

// QueryVolumeID returns the device number of the filesystem containing
// path. For a path that does not exist yet, the deepest existing ancestor
// determines the volume.
func (n *Native) QueryVolumeID(path string) (link.VolumeID, error) {
	probe := path
	for {
		if _, err := os.Lstat(probe); err == nil {
			break
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			break
		}
		probe = parent
	}

	var st unix.Stat_t
	if err := unix.Stat(probe, &st); err != nil {
		return "", &os.PathError{Op: "stat", Path: probe, Err: err}
	}
	return link.VolumeID(strconv.FormatUint(uint64(st.Dev), 10)), nil
}

// ClassifyError maps a primitive's raw failure onto the reason taxonomy.
func (n *Native) ClassifyError(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return code
	}

	var errno unix.Errno
	if stderrors.As(err, &errno) {
		switch errno {
		case unix.EEXIST:
			return errors.ErrTargetAlreadyExists
		case unix.ENOENT:
			return errors.ErrSourceNotFound
		case unix.EACCES, unix.EPERM:
			return errors.ErrPermissionDenied
		case unix.EXDEV:
			return errors.ErrCrossVolume
		}
	}

	switch {
	case os.IsExist(err):
		return errors.ErrTargetAlreadyExists
	case os.IsNotExist(err):
		return errors.ErrSourceNotFound
	case os.IsPermission(err):
		return errors.ErrPermissionDenied
	}
	return errors.ErrSystemFailure
}

// HasReparsePoint reports whether the path itself is a symbolic link,
// without following it. Junctions do not exist here.
func (n *Native) HasReparsePoint(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// ReadReparse reads the symlink at path. isJunction is always false.
func (n *Native) ReadReparse(path string) (target string, isJunction bool, err error) {
	target, err = os.Readlink(path)
	if err != nil {
		return "", false, err
	}
	return target, false, nil
}

// QueryLinkCount returns the number of directory entries referencing the
// file at path.
func (n *Native) QueryLinkCount(path string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return uint64(st.Nlink), nil
}
