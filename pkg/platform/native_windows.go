//go:build windows

package platform

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Microsoft/go-winio"
	"golang.org/x/sys/windows"

	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/link"
)

// CreateHardLink creates a second directory entry for the file at source.
func (n *Native) CreateHardLink(target, source string) error {
	return os.Link(source, target)
}

// CreateSymlink creates a symbolic link at target. The directory mode flag
// is passed explicitly rather than re-deriving it from the filesystem, so
// the flag matches the classification recorded at validation time.
func (n *Native) CreateSymlink(target, source string, isDir bool) error {
	targetPtr, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: source, New: target, Err: err}
	}
	sourcePtr, err := windows.UTF16PtrFromString(source)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: source, New: target, Err: err}
	}

	var flags uint32 = windows.SYMBOLIC_LINK_FLAG_ALLOW_UNPRIVILEGED_CREATE
	if isDir {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}

	err = windows.CreateSymbolicLink(targetPtr, sourcePtr, flags)
	if err == windows.ERROR_INVALID_PARAMETER {
		// Windows versions predating the unprivileged-create flag reject
		// it outright; retry without it.
		err = windows.CreateSymbolicLink(targetPtr, sourcePtr, flags&^uint32(windows.SYMBOLIC_LINK_FLAG_ALLOW_UNPRIVILEGED_CREATE))
	}
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: source, New: target, Err: err}
	}
	return nil
}

// CreateJunction creates a directory junction at target pointing to the
// directory at source. A junction is a directory carrying a mount-point
// reparse buffer, so the directory is created first and removed again if
// setting the reparse point fails, keeping the no-partial-link guarantee.
func (n *Native) CreateJunction(target, source string) error {
	if err := os.Mkdir(target, 0o777); err != nil {
		return err
	}

	data := winio.EncodeReparsePoint(&winio.ReparsePoint{
		Target:       source,
		IsMountPoint: true,
	})

	err := withReparseHandle(target, windows.GENERIC_WRITE, func(h windows.Handle) error {
		var returned uint32
		return windows.DeviceIoControl(h, windows.FSCTL_SET_REPARSE_POINT,
			&data[0], uint32(len(data)), nil, 0, &returned, nil)
	})
	if err != nil {
		_ = os.Remove(target)
		return &os.LinkError{Op: "junction", Old: source, New: target, Err: err}
	}
	return nil
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

// QueryVolumeID returns the mount path of the volume containing path.
// For a path that does not exist yet, the deepest existing ancestor
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

	probePtr, err := windows.UTF16PtrFromString(probe)
	if err != nil {
		return "", err
	}
	buf := make([]uint16, windows.MAX_PATH+1)
	if err := windows.GetVolumePathName(probePtr, &buf[0], uint32(len(buf))); err != nil {
		return "", &os.PathError{Op: "volume", Path: probe, Err: err}
	}
	return link.VolumeID(strings.ToUpper(windows.UTF16ToString(buf))), nil
}

// ClassifyError maps a primitive's raw failure onto the reason taxonomy.
// The mapping is by errno, with the generic os predicates as fallback.
func (n *Native) ClassifyError(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return code
	}

	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		switch errno {
		case windows.ERROR_FILE_EXISTS, windows.ERROR_ALREADY_EXISTS:
			return errors.ErrTargetAlreadyExists
		case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
			return errors.ErrSourceNotFound
		case windows.ERROR_ACCESS_DENIED, windows.ERROR_PRIVILEGE_NOT_HELD:
			return errors.ErrPermissionDenied
		case windows.ERROR_NOT_SAME_DEVICE:
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

// HasReparsePoint reports whether the path itself carries a reparse point
// (symbolic link or junction), without following it.
func (n *Native) HasReparsePoint(path string) (bool, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}
	attrs, err := windows.GetFileAttributes(pathPtr)
	if err != nil {
		return false, &os.PathError{Op: "attributes", Path: path, Err: err}
	}
	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0, nil
}

// ReadReparse reads the reparse point at path and returns its target and
// whether it is a mount point (junction) rather than a symbolic link.
func (n *Native) ReadReparse(path string) (target string, isJunction bool, err error) {
	buf := make([]byte, windows.MAXIMUM_REPARSE_DATA_BUFFER_SIZE)
	var returned uint32

	err = withReparseHandle(path, windows.GENERIC_READ, func(h windows.Handle) error {
		return windows.DeviceIoControl(h, windows.FSCTL_GET_REPARSE_POINT,
			nil, 0, &buf[0], uint32(len(buf)), &returned, nil)
	})
	if err != nil {
		return "", false, &os.PathError{Op: "reparse", Path: path, Err: err}
	}

	rp, err := winio.DecodeReparsePoint(buf[:returned])
	if err != nil {
		return "", false, &os.PathError{Op: "reparse", Path: path, Err: err}
	}
	return rp.Target, rp.IsMountPoint, nil
}

// QueryLinkCount returns the number of directory entries referencing the
// file at path.
func (n *Native) QueryLinkCount(path string) (uint64, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	h, err := windows.CreateFile(pathPtr, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return 0, &os.PathError{Op: "open", Path: path, Err: err}
	}
	defer windows.CloseHandle(h)

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return 0, &os.PathError{Op: "fileinfo", Path: path, Err: err}
	}
	return uint64(info.NumberOfLinks), nil
}

// withReparseHandle opens path without following its reparse point, runs
// fn with the handle and closes it again.
func withReparseHandle(path string, access uint32, fn func(windows.Handle) error) error {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	h, err := windows.CreateFile(pathPtr, access,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OPEN_REPARSE_POINT, 0)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)
	return fn(h)
}
