package vbacmd

import (
	"github.com/google/uuid"
	"github.com/invopop/jsonschema"

	"github.com/oleworks/vbactl/pkg/doctype"
	"github.com/oleworks/vbactl/pkg/trustflag"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
	"github.com/oleworks/vbactl/pkg/vbaproject"
)

// Operation names an engine operation.
type Operation string

const (
	OperationInspect Operation = "inspect"
	OperationRemove  Operation = "remove"
)

var OperationEnum = []any{
	OperationInspect,
	OperationRemove,
}

func (Operation) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        OperationEnum,
		Title:       "Operation",
		Description: "The engine operation.",
	}
}

// Failure is the run's terminal error.
type Failure struct {
	// Kind is the machine-readable error class.
	Kind vbaerrors.Kind `json:"kind" jsonschema:"description=The machine-readable error class."`
	// Message is the human-readable cause.
	Message string `json:"message" jsonschema:"description=The human-readable cause."`
}

// RemovalReport is the removal operation's slice of the result.
type RemovalReport struct {
	// Outcome is what happened to the requested module.
	Outcome vbaproject.Outcome `json:"outcome" jsonschema:"description=What happened to the requested module."`
	// DryRun reports whether the run classified without mutating.
	DryRun bool `json:"dryRun,omitempty" jsonschema:"description=Whether the run classified without mutating."`
	// Saved reports whether the document was persisted after the removal.
	Saved bool `json:"saved" jsonschema:"description=Whether the document was persisted after the removal."`
}

// Result is the structured outcome of one run. Every field determined
// before a failure is populated even when the run fails.
type Result struct {
	// RunID uniquely identifies the run.
	RunID string `json:"runId" jsonschema:"description=Unique identifier of the run."`
	// Operation is the operation that ran.
	Operation Operation `json:"operation" jsonschema:"description=The operation that ran."`
	// File is the target file path as given.
	File string `json:"file" jsonschema:"description=The target file path as given."`
	// App is the resolved host application.
	App doctype.App `json:"app,omitempty" jsonschema:"description=The resolved host application."`
	// PreflightOK reports whether the exclusive-access probe passed.
	PreflightOK bool `json:"preflightOk" jsonschema:"description=Whether the exclusive-access probe passed."`
	// HostVersion is the launched host's reported version.
	HostVersion string `json:"hostVersion,omitempty" jsonschema:"description=The launched host's reported version."`
	// Trust is the trust-setting transaction's final state, absent when the
	// run failed before the setting was read.
	Trust *trustflag.State `json:"trust,omitempty" jsonschema:"description=The trust-setting transaction's final state."`
	// Inspection is the inspect operation's payload.
	Inspection *vbaproject.Inspection `json:"inspection,omitempty" jsonschema:"description=The inspect operation's payload."`
	// Removal is the remove operation's payload.
	Removal *RemovalReport `json:"removal,omitempty" jsonschema:"description=The remove operation's payload."`
	// Advisories are non-fatal notes collected during the run, teardown
	// included, in the order they occurred.
	Advisories []string `json:"advisories,omitempty" jsonschema:"description=Non-fatal notes collected during the run, in order."`
	// Failure is the first terminal error, absent on success.
	Failure *Failure `json:"failure,omitempty" jsonschema:"description=The first terminal error of the run."`
}

func newResult(op Operation, file string) *Result {
	return &Result{
		RunID:     uuid.New().String(),
		Operation: op,
		File:      file,
	}
}
