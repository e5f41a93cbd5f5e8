package olehost

import (
	"errors"
	"fmt"

	"github.com/oleworks/vbactl/pkg/doctype"
)

// ErrNotSupported indicates the host has no explicit macro-project presence
// property; presence must be probed through [Document.Project] instead.
var ErrNotSupported = errors.New("not supported by host")

// OpenMode selects how a document is opened.
type OpenMode int

const (
	// ReadOnly opens the document with no possibility of mutation.
	ReadOnly OpenMode = iota
	// ReadWrite opens the document so components can be removed and the
	// document saved.
	ReadWrite
)

func (m OpenMode) String() string {
	if m == ReadWrite {
		return "read-write"
	}

	return "read-only"
}

// ComponentKind classifies a macro component.
type ComponentKind string

const (
	StandardModule ComponentKind = "standard"
	ClassModule    ComponentKind = "class"
	Form           ComponentKind = "form"

	// DocumentModule components are intrinsically bound to a structural part
	// of the document (the workbook root, a worksheet, the document body).
	// They cannot be detached, only cleared in place.
	DocumentModule ComponentKind = "document"
)

// KindEnum lists the component kinds every host reports, for schema
// generation. Hosts can report additional codes; see [KindFromCode].
var KindEnum = []any{
	StandardModule,
	ClassModule,
	Form,
	DocumentModule,
}

// KindFromCode maps the host's component type code to a [ComponentKind].
// Unrecognized codes are preserved as unknown(N) rather than dropped.
func KindFromCode(code int) ComponentKind {
	switch code {
	case 1:
		return StandardModule
	case 2:
		return ClassModule
	case 3:
		return Form
	case 100:
		return DocumentModule
	default:
		return ComponentKind(fmt.Sprintf("unknown(%d)", code))
	}
}

// Factory launches automation host processes.
// See [NewFactory] for the platform implementation, and [olehosttest.Factory]
// for a scriptable fake.
type Factory interface {
	// Launch starts a new, invisible instance of the host application for dt,
	// with alert dialogs suppressed so nothing can block an unattended run.
	Launch(dt doctype.DocType) (Host, error)
}

// Host is one running automation host process.
type Host interface {
	// Version reports the host application's version, e.g. "16.0". The trust
	// flag lives under a per-version key, so the version must come from the
	// host actually running, not from guesswork.
	Version() string
	// OpenDocument opens the document at path through the host's document
	// collection. A read-only open never mutates the file; a read-write open
	// never triggers format-conversion prompts.
	OpenDocument(path string, mode OpenMode) (Document, error)
	// Quit terminates the host process.
	Quit() error
}

// Document is one open document inside a host.
type Document interface {
	// Name reports the document's display name.
	Name() string
	// HasMacroProject reports the host's explicit macro-project presence
	// property. Hosts without such a property return [ErrNotSupported].
	HasMacroProject() (bool, error)
	// Project returns the document's macro project. Access may legitimately
	// fail; the host does not distinguish absence of macros, a trust flag
	// that has not taken effect, and password protection.
	Project() (Project, error)
	// Save persists the document in place.
	Save() error
	// Close closes the document, discarding any unsaved changes.
	Close() error
}

// Project is a document's macro project.
type Project interface {
	// Components enumerates the project's components in the host's native
	// order.
	Components() ([]Component, error)
	// Lookup finds a component by exact name match.
	Lookup(name string) (Component, bool, error)
	// Remove detaches c from the project. The document must be saved
	// afterwards for the removal to persist.
	Remove(c Component) error
}

// Component is one source-bearing member of a macro project.
type Component interface {
	Name() string
	Kind() ComponentKind
	// LineCount reports the number of source lines.
	LineCount() (int, error)
	// Source returns the component's source text verbatim.
	Source() (string, error)
}
