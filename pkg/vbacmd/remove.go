package vbacmd

import (
	"fmt"
	"log/slog"

	"github.com/oleworks/vbactl/pkg/olehost"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
	"github.com/oleworks/vbactl/pkg/vbaproject"
	"github.com/oleworks/vbactl/pkg/vbasession"
)

// Remove opens path and detaches the named module from its macro project,
// persisting the document exactly once on success. In dry-run mode the
// document is opened read-only and the target is classified without any
// mutation or save.
func (e *Engine) Remove(path, module string) (*Result, error) {
	res := newResult(OperationRemove, path)
	logger := slog.With(
		slog.String("run_id", res.RunID),
		slog.String("op", string(OperationRemove)),
		slog.String("path", path),
		slog.String("module", module),
	)

	span := e.tracer.StartSpan("remove")
	span.SetBaggageItem("run_id", res.RunID)
	defer span.Finish()

	dt, err := e.preflight(res, path)
	if err != nil {
		return res, err
	}

	mode := olehost.ReadWrite
	if e.dryRun {
		mode = olehost.ReadOnly
	}

	sess, tx, err := e.openSession(res, dt, path, mode)
	if err != nil {
		return res, err
	}
	defer e.teardown(res, logger, sess, tx)

	err = e.ensureTrust(res, logger, tx)
	if err != nil {
		return res, err
	}

	outcome, saved, opErr := e.removeModule(sess, module)
	e.broadcastEvent(EventOperationDone{Err: opErr})

	if outcome != nil {
		res.Removal = &RemovalReport{Outcome: *outcome, DryRun: e.dryRun, Saved: saved}
		if outcome.Advisory != "" {
			res.Advisories = append(res.Advisories, outcome.Advisory)
		}
	}

	if opErr != nil {
		return res, e.fail(res, opErr)
	}

	logger.Info("removal complete",
		slog.String("outcome", string(outcome.Kind)),
		slog.Bool("dry_run", e.dryRun),
		slog.Bool("saved", saved),
	)

	return res, nil
}

// removeModule performs the mutation half of a removal run and reports
// whether a save happened. The outcome is returned even when it maps to an
// error, so the caller can report what the host said.
func (e *Engine) removeModule(sess *vbasession.Session, module string) (*vbaproject.Outcome, bool, error) {
	if e.dryRun {
		outcome, err := vbaproject.Classify(sess.Document(), module)
		if err != nil {
			return nil, false, err
		}

		return outcome, false, outcomeErr(outcome)
	}

	outcome, err := vbaproject.Remove(sess.Document(), module)
	if err != nil {
		return nil, false, err
	}

	err = outcomeErr(outcome)
	if err != nil {
		return outcome, false, err
	}

	// The component is detached; persist exactly once, before teardown.
	err = sess.Save()
	if err != nil {
		return outcome, false, err
	}

	return outcome, true, nil
}

// outcomeErr maps outcomes that removed nothing to the errors that fail the
// run: a removal whose mutation did not happen must not report success.
func outcomeErr(outcome *vbaproject.Outcome) error {
	switch outcome.Kind {
	case vbaproject.OutcomeNotFound:
		return fmt.Errorf("%w: %q", vbaerrors.ErrModuleNotFound, outcome.Module)
	case vbaproject.OutcomeProtected:
		return fmt.Errorf("%w: %q is a %s component", vbaerrors.ErrModuleProtected, outcome.Module, outcome.ModuleKind)
	case vbaproject.OutcomeNoProject:
		return fmt.Errorf("%w: document has no accessible macro project", vbaerrors.ErrModuleNotFound)
	default:
		return nil
	}
}
