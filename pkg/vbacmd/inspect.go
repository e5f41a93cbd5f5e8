package vbacmd

import (
	"log/slog"

	"github.com/oleworks/vbactl/pkg/olehost"
	"github.com/oleworks/vbactl/pkg/vbaproject"
)

// Inspect opens path read-only and enumerates its macro project. The
// returned Result is non-nil even on failure, carrying everything the run
// determined before failing plus any teardown advisories.
func (e *Engine) Inspect(path string) (*Result, error) {
	res := newResult(OperationInspect, path)
	logger := slog.With(
		slog.String("run_id", res.RunID),
		slog.String("op", string(OperationInspect)),
		slog.String("path", path),
	)

	span := e.tracer.StartSpan("inspect")
	span.SetBaggageItem("run_id", res.RunID)
	defer span.Finish()

	dt, err := e.preflight(res, path)
	if err != nil {
		return res, err
	}

	sess, tx, err := e.openSession(res, dt, path, olehost.ReadOnly)
	if err != nil {
		return res, err
	}
	defer e.teardown(res, logger, sess, tx)

	err = e.ensureTrust(res, logger, tx)
	if err != nil {
		return res, err
	}

	insp, err := vbaproject.Inspect(sess.Document())
	e.broadcastEvent(EventOperationDone{Err: err})

	if err != nil {
		return res, e.fail(res, err)
	}

	res.Inspection = insp
	if insp.Advisory != "" {
		res.Advisories = append(res.Advisories, insp.Advisory)
	}

	logger.Info("inspection complete",
		slog.Bool("has_project", insp.HasProject),
		slog.Int("modules", len(insp.Modules)),
	)

	return res, nil
}
