package vbaproject

import (
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/oleworks/vbactl/pkg/olehost"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

// OutcomeKind classifies what a removal attempt did.
type OutcomeKind string

const (
	OutcomeRemoved   OutcomeKind = "removed"
	OutcomeNotFound  OutcomeKind = "not_found"
	OutcomeProtected OutcomeKind = "protected"
	OutcomeNoProject OutcomeKind = "no_project"
)

var OutcomeKindEnum = []any{
	OutcomeRemoved,
	OutcomeNotFound,
	OutcomeProtected,
	OutcomeNoProject,
}

func (OutcomeKind) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        OutcomeKindEnum,
		Title:       "OutcomeKind",
		Description: "What a removal attempt did.",
	}
}

// Outcome is the result of one removal attempt.
type Outcome struct {
	// Kind classifies what happened to the requested module.
	Kind OutcomeKind `json:"kind" jsonschema:"description=What happened to the requested module."`
	// Module is the requested component name.
	Module string `json:"module" jsonschema:"description=The requested component name."`
	// ModuleKind is the matched component's kind, empty when nothing matched.
	ModuleKind olehost.ComponentKind `json:"moduleKind,omitempty" jsonschema:"description=The matched component's kind."`
	// Advisory explains outcomes that removed nothing.
	Advisory string `json:"advisory,omitempty" jsonschema:"description=Why nothing was removed, when nothing was."`
}

type target struct {
	proj olehost.Project
	comp olehost.Component
}

// resolveTarget finds the component a removal would detach. A nil target
// with a non-nil outcome means there is nothing to mutate.
func resolveTarget(doc olehost.Document, name string) (*target, *Outcome, error) {
	proj, err := project(doc)
	if errors.Is(err, errNoProject) {
		return nil, &Outcome{Kind: OutcomeNoProject, Module: name, Advisory: errNoProject.Error()}, nil
	}

	if err != nil {
		return nil, &Outcome{Kind: OutcomeNoProject, Module: name, Advisory: AccessAdvisory}, nil
	}

	comp, found, err := proj.Lookup(name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: lookup %q: %w", vbaerrors.ErrRemovalFailed, name, err)
	}

	if !found {
		return nil, &Outcome{Kind: OutcomeNotFound, Module: name}, nil
	}

	if comp.Kind() == olehost.DocumentModule {
		return nil, &Outcome{
			Kind:       OutcomeProtected,
			Module:     name,
			ModuleKind: comp.Kind(),
			Advisory:   "document components are bound to the file's structure and can only be cleared in place, not removed",
		}, nil
	}

	t := &target{proj: proj, comp: comp}
	o := &Outcome{Kind: OutcomeRemoved, Module: name, ModuleKind: comp.Kind()}

	return t, o, nil
}

// Remove looks the component up by exact name and detaches it from the
// project. Document-kind components are never detached. The document is not
// saved here; persisting a Removed outcome is the caller's responsibility.
func Remove(doc olehost.Document, name string) (*Outcome, error) {
	t, outcome, err := resolveTarget(doc, name)
	if err != nil {
		return nil, err
	}

	if t == nil {
		return outcome, nil
	}

	err = t.proj.Remove(t.comp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", vbaerrors.ErrRemovalFailed, err)
	}

	return outcome, nil
}

// Classify reports what Remove would do with name, without mutating the
// project. A Removed outcome means the component exists and is detachable.
func Classify(doc olehost.Document, name string) (*Outcome, error) {
	_, outcome, err := resolveTarget(doc, name)

	return outcome, err
}
