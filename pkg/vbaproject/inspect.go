package vbaproject

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oleworks/vbactl/pkg/olehost"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

// AccessAdvisory reports an inaccessible macro project. The causes are
// indistinguishable through the host interface, so all of them are reported
// together rather than guessed at.
const AccessAdvisory = "project is unavailable: the document has no macros, " +
	"the trust setting has not taken effect on this host instance, " +
	"or the project is password-protected"

var errNoProject = errors.New("document reports no macro project")

// ModuleInfo describes one macro component.
type ModuleInfo struct {
	// Name is the component's name within the project.
	Name string `json:"name" jsonschema:"description=The component's name within the project."`
	// Kind is the component kind.
	Kind olehost.ComponentKind `json:"kind" jsonschema:"description=The component kind."`
	// LineCount is the number of source lines in the component's code module.
	LineCount int `json:"lineCount" jsonschema:"description=The number of source lines in the component's code module."`
	// Source is the component's full source text, copied verbatim.
	Source string `json:"source" jsonschema:"description=The component's full source text."`
}

// Inspection is the result of enumerating a document's macro project.
type Inspection struct {
	// HasProject reports whether a macro project was accessible.
	HasProject bool `json:"hasProject" jsonschema:"description=Whether a macro project was accessible."`
	// Modules lists the components in the project's native enumeration order.
	Modules []ModuleInfo `json:"modules,omitempty" jsonschema:"description=The components in the project's native enumeration order."`
	// Advisory explains an absent or inaccessible project.
	Advisory string `json:"advisory,omitempty" jsonschema:"description=Why the project was reported absent, when it was."`
}

// project resolves the document's macro project. Documents whose host has no
// explicit presence property probe presence through access itself: any
// access failure reads as absence.
func project(doc olehost.Document) (olehost.Project, error) {
	has, err := doc.HasMacroProject()

	switch {
	case errors.Is(err, olehost.ErrNotSupported):
	case err != nil:
		return nil, fmt.Errorf("%w: %w", vbaerrors.ErrProjectAccessFailed, err)
	case !has:
		return nil, errNoProject
	}

	proj, err := doc.Project()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", vbaerrors.ErrProjectAccessFailed, err)
	}

	return proj, nil
}

// Inspect enumerates the document's macro project. An absent or inaccessible
// project is not an error: the result reports no project and an advisory
// explaining why. Source text is copied verbatim, untransformed.
func Inspect(doc olehost.Document) (*Inspection, error) {
	logger := slog.With(slog.String("doc", doc.Name()))

	proj, err := project(doc)
	if errors.Is(err, errNoProject) {
		return &Inspection{Advisory: errNoProject.Error()}, nil
	}

	if err != nil {
		logger.Warn("macro project inaccessible", slog.Any("err", err))

		return &Inspection{Advisory: AccessAdvisory}, nil
	}

	comps, err := proj.Components()
	if err != nil {
		logger.Warn("component enumeration failed", slog.Any("err", err))

		return &Inspection{Advisory: AccessAdvisory}, nil
	}

	insp := &Inspection{
		HasProject: true,
		Modules:    make([]ModuleInfo, 0, len(comps)),
	}

	for _, c := range comps {
		mi, err := moduleInfo(c)
		if err != nil {
			return nil, err
		}

		insp.Modules = append(insp.Modules, mi)
	}

	return insp, nil
}

func moduleInfo(c olehost.Component) (ModuleInfo, error) {
	lines, err := c.LineCount()
	if err != nil {
		return ModuleInfo{}, fmt.Errorf("read line count of %q: %w", c.Name(), err)
	}

	src, err := c.Source()
	if err != nil {
		return ModuleInfo{}, fmt.Errorf("read source of %q: %w", c.Name(), err)
	}

	return ModuleInfo{
		Name:      c.Name(),
		Kind:      c.Kind(),
		LineCount: lines,
		Source:    src,
	}, nil
}
