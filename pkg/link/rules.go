package link

import (
	"github.com/arthur-debert/linkshell/pkg/errors"
)

// rule bundles the kind-specific structural check and the primitive
// dispatch for one link kind. The table keeps the per-kind policy
// data-driven: adding a link kind means adding a row, not editing Create.
type rule struct {
	// validate runs after the shared source-exists and target-absent
	// checks. src is the source's classification at resolution time.
	validate func(p Primitives, req Request, src PathType) *errors.LinkshellError

	// dispatch performs the single filesystem mutation.
	dispatch func(p Primitives, req Request, src PathType) error
}

var rules = map[Kind]rule{
	HardLink: {
		validate: validateHardLink,
		dispatch: func(p Primitives, req Request, _ PathType) error {
			return p.CreateHardLink(req.Target, req.Source)
		},
	},
	SymbolicLink: {
		// No file/directory restriction; the source classification is
		// recorded and passed through as the primitive's mode flag.
		validate: nil,
		dispatch: func(p Primitives, req Request, src PathType) error {
			return p.CreateSymlink(req.Target, req.Source, src == Directory)
		},
	},
	Junction: {
		validate: validateJunction,
		dispatch: func(p Primitives, req Request, _ PathType) error {
			return p.CreateJunction(req.Target, req.Source)
		},
	},
}

// validateHardLink enforces the NTFS hard-link rules: file sources only,
// and source and target on the same volume.
func validateHardLink(p Primitives, req Request, src PathType) *errors.LinkshellError {
	if src == Directory {
		return errors.New(errors.ErrUnsupportedForDirectory,
			"hard links can only be created for files").
			WithDetail("source", req.Source)
	}

	srcVol, err := p.QueryVolumeID(req.Source)
	if err != nil {
		return errors.Wrap(err, errors.ErrSystemFailure,
			"cannot determine source volume")
	}
	tgtVol, err := p.QueryVolumeID(req.Target)
	if err != nil {
		return errors.Wrap(err, errors.ErrSystemFailure,
			"cannot determine target volume")
	}
	if srcVol != tgtVol {
		return errors.New(errors.ErrCrossVolume,
			"hard links cannot span volumes").
			WithDetail("source_volume", string(srcVol)).
			WithDetail("target_volume", string(tgtVol))
	}

	return nil
}

// validateJunction enforces that junctions point at directories.
func validateJunction(_ Primitives, req Request, src PathType) *errors.LinkshellError {
	if src == File {
		return errors.New(errors.ErrUnsupportedForFile,
			"directory junctions can only be created for directories").
			WithDetail("source", req.Source)
	}
	return nil
}
