package doctype

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/oleworks/vbactl/pkg/vbaerrors"
)

// App identifies an automation host application.
type App string

const (
	Excel      App = "excel"
	Word       App = "word"
	PowerPoint App = "powerpoint"
)

// AppEnum lists all host applications, for schema generation.
var AppEnum = []any{
	Excel,
	Word,
	PowerPoint,
}

func (App) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        AppEnum,
		Title:       "App",
		Description: "The automation host application.",
	}
}

// ProgID returns the COM program ID used to launch the host.
func (a App) ProgID() string {
	switch a {
	case Excel:
		return "Excel.Application"
	case Word:
		return "Word.Application"
	case PowerPoint:
		return "PowerPoint.Application"
	default:
		return ""
	}
}

// RegistryApp returns the application's name segment in the per-user
// configuration store, e.g. Software\Microsoft\Office\<ver>\Excel\Security.
func (a App) RegistryApp() string {
	switch a {
	case Excel:
		return "Excel"
	case Word:
		return "Word"
	case PowerPoint:
		return "PowerPoint"
	default:
		return ""
	}
}

// DocType is the resolved type of one document file: the host application
// that owns it and the host's document collection accessor.
type DocType struct {
	App        App    `json:"app"`
	Collection string `json:"collection"`
	Ext        string `json:"ext"`
}

// Two extensions per application: the editable variant and the
// template (Excel, Word) or show (PowerPoint) variant.
var docTypes = map[string]DocType{
	".xlsm": {App: Excel, Collection: "Workbooks"},
	".xltm": {App: Excel, Collection: "Workbooks"},
	".docm": {App: Word, Collection: "Documents"},
	".dotm": {App: Word, Collection: "Documents"},
	".pptm": {App: PowerPoint, Collection: "Presentations"},
	".ppsm": {App: PowerPoint, Collection: "Presentations"},
}

// Resolve maps a file path to its [DocType] by extension, case-insensitively.
// Unsupported extensions return [vbaerrors.ErrUnsupportedFileType].
func Resolve(path string) (DocType, error) {
	ext := strings.ToLower(filepath.Ext(path))

	dt, ok := docTypes[ext]
	if !ok {
		return DocType{}, fmt.Errorf("%w: %q", vbaerrors.ErrUnsupportedFileType, ext)
	}

	dt.Ext = ext

	return dt, nil
}

// SupportedExtensions returns the extensions Resolve accepts, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(docTypes))
	for ext := range docTypes {
		exts = append(exts, ext)
	}

	slices.Sort(exts)

	return exts
}
