package trustflag

import (
	"fmt"

	"github.com/oleworks/vbactl/pkg/doctype"
	"github.com/oleworks/vbactl/pkg/regstore"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

// ValueName is the store value gating programmatic macro-project access.
// Value 1 grants access; 0 or an absent value denies it.
const ValueName = "AccessVBOM"

// KeyPath returns the store key holding the trust setting for one host
// application. The path is versioned, which is why the transaction can only
// be built after the host has been launched and has reported its version.
func KeyPath(app doctype.App, hostVersion string) string {
	return `Software\Microsoft\Office\` + hostVersion + `\` + app.RegistryApp() + `\Security`
}

type phase int

const (
	phaseInit     phase = iota
	phaseSkipped        // already enabled, nothing to revert
	phaseEnabled        // enabled by this run, revert pending
	phaseReverted
)

// Transaction is a capture/enable/revert/verify cycle over one trust setting.
// It is not safe for concurrent use.
type Transaction struct {
	store regstore.Store
	path  string

	phase         phase
	captured      uint32
	existedBefore bool
	verifyNote    string
}

func New(store regstore.Store, app doctype.App, hostVersion string) *Transaction {
	return &Transaction{
		store: store,
		path:  KeyPath(app, hostVersion),
	}
}

// Ensure captures the current setting and makes sure macro-project access is
// enabled before any project operation runs. An already-enabled setting is
// left untouched. A disabled or absent setting is an
// [vbaerrors.ErrTrustSettingRequired] failure unless autoEnable is set, in
// which case the setting is written and recorded for revert on teardown.
func (t *Transaction) Ensure(autoEnable bool) error {
	val, ok, err := t.store.Read(t.path, ValueName)
	if err != nil {
		return fmt.Errorf("capture trust setting: %w", err)
	}

	t.existedBefore = ok
	t.captured = val

	if ok && val == 1 {
		t.phase = phaseSkipped

		return nil
	}

	if !autoEnable {
		state := fmt.Sprintf("is %d", val)
		if !ok {
			state = "is not set"
		}

		return fmt.Errorf(`%w: %s\%s %s and auto-enable was not requested`,
			vbaerrors.ErrTrustSettingRequired, t.path, ValueName, state)
	}

	err = t.store.Write(t.path, ValueName, 1)
	if err != nil {
		return fmt.Errorf("%w: %w", vbaerrors.ErrTrustSettingWriteFailed, err)
	}

	t.phase = phaseEnabled

	return nil
}

// Enabled reports whether the setting is on right now, either pre-existing
// or written by this run and not yet reverted.
func (t *Transaction) Enabled() bool {
	return t.phase == phaseSkipped || t.phase == phaseEnabled
}

// Modified reports whether this run wrote the setting.
func (t *Transaction) Modified() bool {
	return t.phase == phaseEnabled || t.phase == phaseReverted
}

// Revert restores the setting this run wrote: the captured value is written
// back if the setting existed before the run, otherwise the run-created
// value is deleted. Reverting an unmodified or already-reverted transaction
// is a no-op, so Revert is safe to call on every exit path.
func (t *Transaction) Revert() error {
	if t.phase != phaseEnabled {
		return nil
	}

	if t.existedBefore {
		err := t.store.Write(t.path, ValueName, t.captured)
		if err != nil {
			return fmt.Errorf("%w: restore trust setting to %d: %w", vbaerrors.ErrTeardown, t.captured, err)
		}
	} else {
		err := t.store.Delete(t.path, ValueName)
		if err != nil {
			return fmt.Errorf("%w: remove run-created trust setting: %w", vbaerrors.ErrTeardown, err)
		}
	}

	t.phase = phaseReverted

	return nil
}

// Verify re-reads the setting and compares it to the expected post-revert
// state. The host can rewrite the setting on its own shutdown, so a mismatch
// is returned as advisory text rather than an error; the error return covers
// only a failed re-read. Unmodified transactions have nothing to verify.
func (t *Transaction) Verify() (string, error) {
	if !t.Modified() {
		return "", nil
	}

	val, ok, err := t.store.Read(t.path, ValueName)
	if err != nil {
		return "", fmt.Errorf("%w: verify trust setting: %w", vbaerrors.ErrTeardown, err)
	}

	switch {
	case t.existedBefore && !ok:
		t.verifyNote = fmt.Sprintf("trust setting is absent, expected %d", t.captured)
	case t.existedBefore && val != t.captured:
		t.verifyNote = fmt.Sprintf("trust setting is %d, expected %d", val, t.captured)
	case !t.existedBefore && ok:
		t.verifyNote = fmt.Sprintf("trust setting is still present (value %d), expected absent", val)
	default:
		t.verifyNote = ""
	}

	return t.verifyNote, nil
}

// State is a snapshot of the transaction for structured reporting.
type State struct {
	// ExistedBeforeRun reports whether the setting existed before the run.
	ExistedBeforeRun bool `json:"existedBeforeRun" jsonschema:"description=Whether the trust setting existed before the run."`
	// CapturedValue is the value captured before any mutation; 0 when the
	// setting was absent.
	CapturedValue uint32 `json:"capturedValue" jsonschema:"description=The trust setting value captured before any mutation."`
	// Enabled reports whether the setting is on at snapshot time.
	Enabled bool `json:"enabled" jsonschema:"description=Whether macro-project access is enabled at snapshot time."`
	// ModifiedByRun reports whether the run wrote the setting.
	ModifiedByRun bool `json:"modifiedByRun" jsonschema:"description=Whether the run wrote the trust setting."`
	// Reverted reports whether the run's mutation was rolled back.
	Reverted bool `json:"reverted" jsonschema:"description=Whether the run's mutation was rolled back."`
	// VerifyMismatch describes a post-revert inconsistency, empty when the
	// store matched the expected state.
	VerifyMismatch string `json:"verifyMismatch,omitempty" jsonschema:"description=Post-revert inconsistency found by the verify re-read; empty when consistent."`
}

func (t *Transaction) State() State {
	return State{
		ExistedBeforeRun: t.existedBefore,
		CapturedValue:    t.captured,
		Enabled:          t.Enabled(),
		ModifiedByRun:    t.Modified(),
		Reverted:         t.phase == phaseReverted,
		VerifyMismatch:   t.verifyNote,
	}
}
