package link

import (
	"github.com/arthur-debert/linkshell/pkg/paths"
)

// Classify resolves a raw path and reports what it denotes and which volume
// holds it. It is read-only and follows symbolic links: a path that is
// itself a symlink classifies as whatever its ultimate target is, so
// linking "through" an existing symlink behaves like conventional link
// tools. The presentation layer uses this for pre-flight hints (for
// example disabling the hard-link option for a directory source).
func Classify(p Primitives, rawPath string) (Classification, error) {
	path, err := paths.Resolve(rawPath)
	if err != nil {
		return Classification{}, err
	}

	pathType, err := p.QueryPathType(path)
	if err != nil {
		return Classification{}, err
	}
	if pathType == NotFound {
		return Classification{Type: NotFound}, nil
	}

	volume, err := p.QueryVolumeID(path)
	if err != nil {
		// The type alone is still useful; leave the volume opaque-empty.
		return Classification{Type: pathType}, nil
	}

	return Classification{Type: pathType, Volume: volume}, nil
}
