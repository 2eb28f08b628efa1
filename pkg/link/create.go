package link

import (
	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/logging"
)

// Create attempts the link operation described by req and returns its
// Outcome. Every exit path is an Outcome value; nothing escapes the core
// as an unhandled fault.
//
// Preconditions are checked in order, short-circuiting on the first
// failure: source exists, target absent, kind-specific structural rule.
// Only then is the primitive invoked, exactly once. The check-then-act
// sequence is inherently race-prone against other processes, so the
// primitive's own failure is authoritative and is re-classified through
// ClassifyError rather than trusting the earlier checks. No retry is
// attempted; a race-lost failure surfaces as a normal outcome.
func Create(p Primitives, req Request) Outcome {
	logger := logging.GetLogger("link.create")
	defer logging.LogOperationStart(logger, "create "+string(req.Kind))()
	logger.Debug().
		Str("source", req.Source).
		Str("target", req.Target).
		Msg("Creating link")

	srcType, err := p.QueryPathType(req.Source)
	if err != nil {
		return failed(p.ClassifyError(err),
			errors.Wrap(err, errors.ErrSystemFailure, "cannot classify source"))
	}
	if srcType == NotFound {
		return failed(errors.ErrSourceNotFound,
			errors.New(errors.ErrSourceNotFound, "source does not exist").
				WithDetail("source", req.Source))
	}

	tgtType, err := p.QueryPathType(req.Target)
	if err != nil {
		return failed(p.ClassifyError(err),
			errors.Wrap(err, errors.ErrSystemFailure, "cannot classify target"))
	}
	if tgtType != NotFound {
		return failed(errors.ErrTargetAlreadyExists,
			errors.New(errors.ErrTargetAlreadyExists, "target already exists").
				WithDetail("target", req.Target))
	}

	r, ok := rules[req.Kind]
	if !ok {
		// NewRequest guarantees a known kind; reaching this is a bug.
		return failed(errors.ErrInternal,
			errors.Newf(errors.ErrInternal, "no rule for link kind %q", req.Kind))
	}

	if r.validate != nil {
		if verr := r.validate(p, req, srcType); verr != nil {
			logger.Debug().Str("reason", string(verr.Code)).Msg("Validation rejected request")
			return failed(verr.Code, verr)
		}
	}

	if err := r.dispatch(p, req, srcType); err != nil {
		reason := p.ClassifyError(err)
		logger.Warn().Err(err).Str("reason", string(reason)).Msg("Link primitive failed")
		return failed(reason, err)
	}

	logger.Info().
		Str("kind", string(req.Kind)).
		Str("target", req.Target).
		Msg("Link created")
	return created()
}
