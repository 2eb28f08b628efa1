// Package inspect reports what kind of link, if any, a path is. It is the
// read-only companion to the link core: symbolic links and junctions are
// recognized by their reparse data, hard-linked files by a link count
// greater than one. Single-level only; targets are reported as recorded,
// never resolved further.
package inspect

import (
	"path/filepath"

	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/link"
	"github.com/arthur-debert/linkshell/pkg/logging"
	"github.com/arthur-debert/linkshell/pkg/paths"
)

// Querier is the read-only slice of the platform boundary inspection
// needs.
type Querier interface {
	QueryPathType(path string) (link.PathType, error)
	QueryLinkCount(path string) (uint64, error)
	HasReparsePoint(path string) (bool, error)
	ReadReparse(path string) (target string, isJunction bool, err error)
}

// LinkType classifies what kind of link a path is.
type LinkType string

const (
	TypeNone     LinkType = "none"
	TypeSymlink  LinkType = "symlink"
	TypeJunction LinkType = "junction"
	TypeHardLink LinkType = "hardlink"
)

// Report describes a single inspected path.
type Report struct {
	Path string   `json:"path" yaml:"path"`
	Type LinkType `json:"type" yaml:"type"`

	// Target is the raw recorded target for symlinks and junctions.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// TargetExists reports whether Target currently resolves, for
	// symlinks and junctions only.
	TargetExists bool `json:"target_exists,omitempty" yaml:"target_exists,omitempty"`

	// LinkCount is the number of directory entries for the file, set for
	// regular files so hard links are recognizable.
	LinkCount uint64 `json:"link_count,omitempty" yaml:"link_count,omitempty"`
}

// Inspect resolves rawPath and reports what kind of link it is. A path
// that does not exist at all is an error; a path that exists but is no
// link yields a TypeNone report, not an error.
func Inspect(q Querier, rawPath string) (*Report, error) {
	logger := logging.GetLogger("inspect")

	path, err := paths.Resolve(rawPath)
	if err != nil {
		return nil, err
	}

	report := &Report{Path: path, Type: TypeNone}

	// Reparse check comes first: a dangling symlink has no resolvable
	// type but is still very much a link.
	hasReparse, err := q.HasReparsePoint(path)
	if err != nil {
		pathType, terr := q.QueryPathType(path)
		if terr == nil && pathType == link.NotFound {
			return nil, errors.New(errors.ErrInspectFailed, "path does not exist").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrInspectFailed, "cannot read path metadata")
	}

	if hasReparse {
		target, isJunction, err := q.ReadReparse(path)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInspectFailed, "cannot read link target")
		}
		report.Type = TypeSymlink
		if isJunction {
			report.Type = TypeJunction
		}
		report.Target = target
		report.TargetExists = targetExists(q, path, target)
		logger.Debug().Str("path", path).Str("type", string(report.Type)).Msg("Inspected reparse point")
		return report, nil
	}

	pathType, err := q.QueryPathType(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInspectFailed, "cannot classify path")
	}

	switch pathType {
	case link.NotFound:
		return nil, errors.New(errors.ErrInspectFailed, "path does not exist").
			WithDetail("path", path)
	case link.File:
		count, err := q.QueryLinkCount(path)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInspectFailed, "cannot read link count")
		}
		report.LinkCount = count
		if count > 1 {
			report.Type = TypeHardLink
		}
	}

	logger.Debug().Str("path", path).Str("type", string(report.Type)).Msg("Inspected path")
	return report, nil
}

// targetExists checks whether a recorded link target resolves. Relative
// targets are interpreted against the link's parent directory.
func targetExists(q Querier, linkPath, target string) bool {
	if target == "" {
		return false
	}
	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(linkPath), resolved)
	}
	pathType, err := q.QueryPathType(resolved)
	return err == nil && pathType != link.NotFound
}
