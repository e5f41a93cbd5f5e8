package vbacmd

import (
	"fmt"
	"log/slog"

	"github.com/oleworks/vbactl/pkg/doctype"
	"github.com/oleworks/vbactl/pkg/filelock"
	"github.com/oleworks/vbactl/pkg/olehost"
	"github.com/oleworks/vbactl/pkg/regstore"
	"github.com/oleworks/vbactl/pkg/tracing"
	"github.com/oleworks/vbactl/pkg/trustflag"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
	"github.com/oleworks/vbactl/pkg/vbasession"
)

const advisoryTrustModified = "trust setting was enabled for this run; " +
	"an already-running host instance may not honor it"

// Engine runs inspect and remove operations. It owns no state between runs;
// each run launches and tears down its own host instance. Runs must not
// overlap: the host and the trust store are process-shared resources that
// the engine assumes at most one run touches at a time.
type Engine struct {
	factory         olehost.Factory
	store           regstore.Store
	tracer          tracing.Tracer
	subs            []func(any)
	autoEnableTrust bool
	dryRun          bool
}

func New(factory olehost.Factory, store regstore.Store, opts ...Opt) *Engine {
	e := &Engine{
		factory: factory,
		store:   store,
		tracer:  tracing.NewLoggingTracer(slog.Default()),
		subs:    []func(any){},
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

type Opt func(*Engine)

// WithAutoEnableTrust makes runs write the trust setting when it is found
// disabled, recording the mutation for revert on teardown.
func WithAutoEnableTrust(enable bool) Opt {
	return func(e *Engine) {
		e.autoEnableTrust = enable
	}
}

// WithDryRun makes removals classify their target without mutating the
// project or saving the document.
func WithDryRun(dryRun bool) Opt {
	return func(e *Engine) {
		e.dryRun = dryRun
	}
}

// WithTracer replaces the default logging tracer.
func WithTracer(tracer tracing.Tracer) Opt {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

func (e *Engine) broadcastEvent(evt any) {
	for _, sub := range e.subs {
		sub(evt)
	}
}

func (e *Engine) Subscribe(f func(any)) {
	e.subs = append(e.subs, f)
}

// fail records the run's terminal error on the result and passes it
// through. Only the first error sticks; anything later is teardown noise
// that must not overwrite it.
func (e *Engine) fail(res *Result, err error) error {
	if res.Failure == nil {
		res.Failure = &Failure{
			Kind:    vbaerrors.KindOf(err),
			Message: err.Error(),
		}
	}

	return err
}

// preflight resolves the file's type and probes it for exclusive access.
// Both checks run before any host is launched.
func (e *Engine) preflight(res *Result, path string) (doctype.DocType, error) {
	dt, err := doctype.Resolve(path)
	if err != nil {
		return doctype.DocType{}, e.fail(res, err)
	}

	res.App = dt.App
	e.broadcastEvent(EventResolved{App: dt.App})

	err = filelock.Probe(path)
	if err != nil {
		return doctype.DocType{}, e.fail(res, err)
	}

	res.PreflightOK = true
	e.broadcastEvent(EventPreflightPassed{})

	return dt, nil
}

func (e *Engine) openSession(res *Result, dt doctype.DocType, path string, mode olehost.OpenMode) (*vbasession.Session, *trustflag.Transaction, error) {
	span := e.tracer.StartSpan("open_session")
	span.SetBaggageItem("app", string(dt.App))
	span.SetBaggageItem("mode", mode.String())
	defer span.Finish()

	sess, err := vbasession.Open(e.factory, dt, path, mode)
	if err != nil {
		return nil, nil, e.fail(res, err)
	}

	res.HostVersion = sess.HostVersion()
	e.broadcastEvent(EventSessionOpened{HostVersion: res.HostVersion})

	// The trust setting's store path is keyed by the host's reported
	// version, so the transaction can only exist from this point on.
	return sess, trustflag.New(e.store, dt.App, res.HostVersion), nil
}

func (e *Engine) ensureTrust(res *Result, logger *slog.Logger, tx *trustflag.Transaction) error {
	err := tx.Ensure(e.autoEnableTrust)
	if err != nil {
		return e.fail(res, err)
	}

	if tx.Modified() {
		logger.Warn("trust setting enabled for this run",
			slog.Bool("existed_before", tx.State().ExistedBeforeRun),
		)
		res.Advisories = append(res.Advisories, advisoryTrustModified)
	}

	e.broadcastEvent(EventTrustEnsured{Modified: tx.Modified()})

	return nil
}

// teardown is the ordered cleanup chain: close the session, revert the
// trust setting, verify the revert. Every step runs even when earlier ones
// fail; failures are logged and downgraded to advisories because the run's
// outcome is already determined by the time teardown starts.
func (e *Engine) teardown(res *Result, logger *slog.Logger, sess *vbasession.Session, tx *trustflag.Transaction) {
	steps := []struct {
		run  func() error
		name string
	}{
		{sess.Close, "close session"},
		{tx.Revert, "revert trust setting"},
		{func() error {
			note, err := tx.Verify()
			if note != "" {
				res.Advisories = append(res.Advisories, note)
			}

			return err
		}, "verify trust setting"},
	}

	for _, step := range steps {
		err := step.run()
		if err != nil {
			logger.Warn("teardown step failed",
				slog.String("step", step.name),
				slog.Any("err", err),
			)
			res.Advisories = append(res.Advisories, fmt.Sprintf("%s: %v", step.name, err))
		}

		e.broadcastEvent(EventTeardownStep{Name: step.name, Err: err})
	}

	state := tx.State()
	res.Trust = &state
}
