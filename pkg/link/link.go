// Package link implements the link-creation decision and validation core.
//
// Given a validated Request the core decides whether the operation is legal,
// dispatches to the matching OS primitive exactly once, and normalizes the
// result into an Outcome carrying a reason from a closed taxonomy. The core
// holds no state across calls and performs at most one filesystem mutation
// per call, only after every precondition check has passed.
package link

import (
	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/paths"
)

// Kind identifies the kind of link to create. It is a closed variant;
// dispatch and validation rules are looked up per kind in a rule table
// so future reparse-point variants can be added without touching call sites.
type Kind string

const (
	HardLink     Kind = "hardlink"
	SymbolicLink Kind = "symlink"
	Junction     Kind = "junction"
)

// Kinds lists every supported link kind, in CLI help order.
func Kinds() []Kind {
	return []Kind{HardLink, SymbolicLink, Junction}
}

// ParseKind parses the CLI spelling of a link kind. An unknown spelling is
// a usage-level error, never a link Outcome.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case HardLink, SymbolicLink, Junction:
		return Kind(s), nil
	case "":
		return "", errors.New(errors.ErrInvalidInput, "link type is required")
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown link type %q (expected hardlink, symlink or junction)", s)
	}
}

// PathType classifies what a path denotes on the filesystem.
type PathType int

const (
	NotFound PathType = iota
	File
	Directory
)

func (t PathType) String() string {
	switch t {
	case File:
		return "file"
	case Directory:
		return "directory"
	default:
		return "not found"
	}
}

// VolumeID is an opaque identifier for the storage volume containing a
// path. It is compared for equality only, for the hard-link same-volume
// check.
type VolumeID string

// Classification is the derived description of a path: what it denotes
// and which volume holds it. It is computed on demand and never stored.
type Classification struct {
	Type   PathType
	Volume VolumeID
}

// Request is a validated link operation: resolved absolute source and
// target paths plus the requested kind. Construct it with NewRequest;
// the zero value is not usable.
type Request struct {
	// Source is the existing filesystem entry the link will point at.
	Source string
	// Target is the path at which the link will be created.
	Target string
	// Kind selects the link primitive.
	Kind Kind
}

// NewRequest resolves and validates the raw inputs of a link operation.
// Path resolution (home expansion, absolutization, separator normalization)
// happens here exactly once; every later check reuses the resolved values.
// Identical source and target is rejected here as a usage-level error, before
// any OS call.
func NewRequest(source, target string, kind Kind) (Request, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Request{}, err
	}

	src, err := paths.Resolve(source)
	if err != nil {
		return Request{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid source path")
	}
	tgt, err := paths.Resolve(target)
	if err != nil {
		return Request{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid target path")
	}

	if paths.Equal(src, tgt) {
		return Request{}, errors.New(errors.ErrInvalidInput,
			"source and target are the same path").WithDetail("path", src)
	}

	return Request{Source: src, Target: tgt, Kind: kind}, nil
}

// Status is the terminal state of a link operation.
type Status string

const (
	StatusCreated Status = "created"
	StatusFailed  Status = "failed"
)

// Outcome is the result of attempting a Request. Reason is set iff
// Status is StatusFailed; Err carries the causal error for logging.
// The core never formats user-facing text, only structured reasons.
type Outcome struct {
	Status Status
	Reason errors.ErrorCode
	Err    error
}

// Created reports whether the link was created.
func (o Outcome) Created() bool {
	return o.Status == StatusCreated
}

func created() Outcome {
	return Outcome{Status: StatusCreated}
}

func failed(reason errors.ErrorCode, err error) Outcome {
	return Outcome{Status: StatusFailed, Reason: reason, Err: err}
}
