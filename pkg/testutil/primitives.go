// Package testutil provides test doubles for the OS primitive boundary.
package testutil

import (
	"os"

	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/link"
)

// Mutation records one filesystem mutation performed through the fake.
type Mutation struct {
	Kind   link.Kind
	Target string
	Source string
	IsDir  bool // recorded symlink mode flag
}

// FakePrimitives is an in-memory implementation of link.Primitives with
// scripted path classifications, volumes and failures. It records every
// mutation so tests can assert the no-mutation-on-failure property.
type FakePrimitives struct {
	// Types maps paths to their classification. Missing paths classify
	// as NotFound.
	Types map[string]link.PathType

	// Volumes maps paths to volume ids. Missing paths fall back to
	// DefaultVolume.
	Volumes       map[string]link.VolumeID
	DefaultVolume link.VolumeID

	// Per-primitive injected failures.
	HardLinkErr error
	SymlinkErr  error
	JunctionErr error

	// QueryErrs injects metadata read failures per path.
	QueryErrs map[string]error

	Mutations []Mutation
}

// NewFakePrimitives returns a fake with no entries and a single default
// volume.
func NewFakePrimitives() *FakePrimitives {
	return &FakePrimitives{
		Types:         make(map[string]link.PathType),
		Volumes:       make(map[string]link.VolumeID),
		QueryErrs:     make(map[string]error),
		DefaultVolume: "C:",
	}
}

// AddFile registers a file at path.
func (f *FakePrimitives) AddFile(path string) *FakePrimitives {
	f.Types[path] = link.File
	return f
}

// AddDir registers a directory at path.
func (f *FakePrimitives) AddDir(path string) *FakePrimitives {
	f.Types[path] = link.Directory
	return f
}

// OnVolume pins a path to a volume id.
func (f *FakePrimitives) OnVolume(path string, vol link.VolumeID) *FakePrimitives {
	f.Volumes[path] = vol
	return f
}

func (f *FakePrimitives) record(m Mutation) {
	f.Mutations = append(f.Mutations, m)
}

func (f *FakePrimitives) CreateHardLink(target, source string) error {
	if f.HardLinkErr != nil {
		return f.HardLinkErr
	}
	f.record(Mutation{Kind: link.HardLink, Target: target, Source: source})
	f.Types[target] = link.File
	return nil
}

func (f *FakePrimitives) CreateSymlink(target, source string, isDir bool) error {
	if f.SymlinkErr != nil {
		return f.SymlinkErr
	}
	f.record(Mutation{Kind: link.SymbolicLink, Target: target, Source: source, IsDir: isDir})
	// The new symlink classifies as its target does.
	f.Types[target] = f.Types[source]
	return nil
}

func (f *FakePrimitives) CreateJunction(target, source string) error {
	if f.JunctionErr != nil {
		return f.JunctionErr
	}
	f.record(Mutation{Kind: link.Junction, Target: target, Source: source})
	f.Types[target] = link.Directory
	return nil
}

func (f *FakePrimitives) QueryPathType(path string) (link.PathType, error) {
	if err := f.QueryErrs[path]; err != nil {
		return link.NotFound, err
	}
	return f.Types[path], nil
}

func (f *FakePrimitives) QueryVolumeID(path string) (link.VolumeID, error) {
	if err := f.QueryErrs[path]; err != nil {
		return "", err
	}
	if vol, ok := f.Volumes[path]; ok {
		return vol, nil
	}
	return f.DefaultVolume, nil
}

// ClassifyError mirrors the native classifiers using the portable os
// predicates, with LinkshellError codes passing through untouched.
func (f *FakePrimitives) ClassifyError(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return code
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
