//go:build windows

package olehost

import (
	"errors"
	"fmt"
	"strings"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/oleworks/vbactl/pkg/doctype"
)

// Host object model constants.
const (
	msoFalse           = 0 // Office tri-state false.
	msoTrue            = -1
	wdAlertsNone       = 0 // Word DisplayAlerts level.
	wdDoNotSaveChanges = 0 // Word Close SaveChanges argument.
	ppAlertsNone       = 1 // PowerPoint DisplayAlerts level.
)

func newHostError(app doctype.App, op string, cause error) *HostError {
	he := &HostError{App: app, Op: op, Cause: cause}

	var oleErr *ole.OleError
	if errors.As(cause, &oleErr) {
		he.Code = uint32(oleErr.Code())
	}

	return he
}

type comFactory struct{}

func newPlatformFactory() Factory {
	return comFactory{}
}

// Launch creates a new host instance through its COM program ID. The instance
// is kept invisible and its alert dialogs are suppressed before any document
// is opened, so a wedged dialog can never block an unattended run.
func (comFactory) Launch(dt doctype.DocType) (Host, error) {
	// S_FALSE (already initialized on this thread) comes back as an error
	// from go-ole and is safe to ignore.
	_ = ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)

	unknown, err := oleutil.CreateObject(dt.App.ProgID())
	if err != nil {
		ole.CoUninitialize()

		return nil, newHostError(dt.App, "create "+dt.App.ProgID(), err)
	}

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		unknown.Release()
		ole.CoUninitialize()

		return nil, newHostError(dt.App, "query IDispatch", err)
	}

	h := &comHost{app: app, dt: dt}

	err = h.suppressUI()
	if err != nil {
		_ = h.Quit()

		return nil, err
	}

	return h, nil
}

type comHost struct {
	app  *ole.IDispatch
	dt   doctype.DocType
	quit bool
}

func (h *comHost) suppressUI() error {
	app := h.dt.App

	switch app {
	case doctype.Excel:
		if _, err := oleutil.PutProperty(h.app, "Visible", false); err != nil {
			return newHostError(app, "set Visible", err)
		}

		if _, err := oleutil.PutProperty(h.app, "DisplayAlerts", false); err != nil {
			return newHostError(app, "set DisplayAlerts", err)
		}
	case doctype.Word:
		if _, err := oleutil.PutProperty(h.app, "Visible", false); err != nil {
			return newHostError(app, "set Visible", err)
		}

		if _, err := oleutil.PutProperty(h.app, "DisplayAlerts", wdAlertsNone); err != nil {
			return newHostError(app, "set DisplayAlerts", err)
		}
	case doctype.PowerPoint:
		// PowerPoint rejects Visible=false; presentations are opened without
		// a window instead (WithWindow on open).
		if _, err := oleutil.PutProperty(h.app, "DisplayAlerts", ppAlertsNone); err != nil {
			return newHostError(app, "set DisplayAlerts", err)
		}
	}

	return nil
}

func (h *comHost) Version() string {
	v, err := oleutil.GetProperty(h.app, "Version")
	if err != nil {
		return ""
	}
	defer v.Clear() //nolint:errcheck // Read-only variant.

	return strings.TrimSpace(v.ToString())
}

func (h *comHost) OpenDocument(path string, mode OpenMode) (Document, error) {
	app := h.dt.App

	v, err := oleutil.GetProperty(h.app, h.dt.Collection)
	if err != nil {
		return nil, newHostError(app, "get "+h.dt.Collection, err)
	}

	collection := v.ToIDispatch()
	defer collection.Release()

	readOnly := mode == ReadOnly

	var doc *ole.VARIANT

	switch app {
	case doctype.Excel:
		// Workbooks.Open(FileName, UpdateLinks, ReadOnly). UpdateLinks=0
		// prevents external-link refresh on open.
		doc, err = oleutil.CallMethod(collection, "Open", path, 0, readOnly)
	case doctype.Word:
		// Documents.Open(FileName, ConfirmConversions, ReadOnly).
		// ConfirmConversions=false prevents format-conversion prompts.
		doc, err = oleutil.CallMethod(collection, "Open", path, false, readOnly)
	case doctype.PowerPoint:
		// Presentations.Open(FileName, ReadOnly, Untitled, WithWindow).
		ro := msoFalse
		if readOnly {
			ro = msoTrue
		}

		doc, err = oleutil.CallMethod(collection, "Open", path, ro, msoFalse, msoFalse)
	default:
		return nil, fmt.Errorf("no document collection for %q", app)
	}

	if err != nil {
		return nil, newHostError(app, "open "+path, err)
	}

	return &comDocument{doc: doc.ToIDispatch(), app: app}, nil
}

func (h *comHost) Quit() error {
	if h.quit {
		return nil
	}

	h.quit = true

	_, err := oleutil.CallMethod(h.app, "Quit")

	h.app.Release()
	ole.CoUninitialize()

	if err != nil {
		return newHostError(h.dt.App, "quit", err)
	}

	return nil
}

type comDocument struct {
	doc *ole.IDispatch
	app doctype.App
}

func (d *comDocument) Name() string {
	v, err := oleutil.GetProperty(d.doc, "Name")
	if err != nil {
		return ""
	}
	defer v.Clear() //nolint:errcheck // Read-only variant.

	return v.ToString()
}

func (d *comDocument) HasMacroProject() (bool, error) {
	if d.app != doctype.Excel {
		return false, ErrNotSupported
	}

	v, err := oleutil.GetProperty(d.doc, "HasVBProject")
	if err != nil {
		return false, newHostError(d.app, "get HasVBProject", err)
	}
	defer v.Clear() //nolint:errcheck // Read-only variant.

	has, ok := v.Value().(bool)
	if !ok {
		return false, fmt.Errorf("unexpected HasVBProject value %v", v.Value())
	}

	return has, nil
}

func (d *comDocument) Project() (Project, error) {
	v, err := oleutil.GetProperty(d.doc, "VBProject")
	if err != nil {
		return nil, newHostError(d.app, "get VBProject", err)
	}

	return &comProject{proj: v.ToIDispatch(), app: d.app}, nil
}

func (d *comDocument) Save() error {
	_, err := oleutil.CallMethod(d.doc, "Save")
	if err != nil {
		return newHostError(d.app, "save", err)
	}

	return nil
}

// Close always discards: a removal that should persist is saved explicitly
// before close, and an unmutated document must never be silently rewritten.
func (d *comDocument) Close() error {
	var err error

	switch d.app {
	case doctype.Excel:
		_, err = oleutil.CallMethod(d.doc, "Close", false)
	case doctype.Word:
		_, err = oleutil.CallMethod(d.doc, "Close", wdDoNotSaveChanges)
	case doctype.PowerPoint:
		_, err = oleutil.CallMethod(d.doc, "Close")
	}

	d.doc.Release()

	if err != nil {
		return newHostError(d.app, "close", err)
	}

	return nil
}

type comProject struct {
	proj *ole.IDispatch
	app  doctype.App
}

func (p *comProject) components() (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(p.proj, "VBComponents")
	if err != nil {
		return nil, newHostError(p.app, "get VBComponents", err)
	}

	return v.ToIDispatch(), nil
}

func (p *comProject) Components() ([]Component, error) {
	coll, err := p.components()
	if err != nil {
		return nil, err
	}
	defer coll.Release()

	v, err := oleutil.GetProperty(coll, "Count")
	if err != nil {
		return nil, newHostError(p.app, "get VBComponents.Count", err)
	}

	count := int(v.Val)
	_ = v.Clear()

	comps := make([]Component, 0, count)

	// Host collections are 1-indexed.
	for i := 1; i <= count; i++ {
		item, err := oleutil.GetProperty(coll, "Item", i)
		if err != nil {
			return nil, newHostError(p.app, fmt.Sprintf("get VBComponents.Item(%d)", i), err)
		}

		c, err := newComComponent(item.ToIDispatch(), p.app)
		if err != nil {
			return nil, err
		}

		comps = append(comps, c)
	}

	return comps, nil
}

// Lookup iterates rather than using the host's by-name indexer, which matches
// case-insensitively; iteration keeps the match exact.
func (p *comProject) Lookup(name string) (Component, bool, error) {
	comps, err := p.Components()
	if err != nil {
		return nil, false, err
	}

	for _, c := range comps {
		if c.Name() == name {
			return c, true, nil
		}
	}

	return nil, false, nil
}

func (p *comProject) Remove(c Component) error {
	cc, ok := c.(*comComponent)
	if !ok {
		return fmt.Errorf("component %q is not attached to this host", c.Name())
	}

	coll, err := p.components()
	if err != nil {
		return err
	}
	defer coll.Release()

	_, err = oleutil.CallMethod(coll, "Remove", cc.disp)
	if err != nil {
		return newHostError(p.app, "remove "+c.Name(), err)
	}

	return nil
}

type comComponent struct {
	disp *ole.IDispatch
	app  doctype.App
	name string
	kind ComponentKind
}

func newComComponent(disp *ole.IDispatch, app doctype.App) (*comComponent, error) {
	v, err := oleutil.GetProperty(disp, "Name")
	if err != nil {
		return nil, newHostError(app, "get component Name", err)
	}

	name := v.ToString()
	_ = v.Clear()

	v, err = oleutil.GetProperty(disp, "Type")
	if err != nil {
		return nil, newHostError(app, "get component Type", err)
	}

	code := int(v.Val)
	_ = v.Clear()

	return &comComponent{disp: disp, app: app, name: name, kind: KindFromCode(code)}, nil
}

func (c *comComponent) Name() string {
	return c.name
}

func (c *comComponent) Kind() ComponentKind {
	return c.kind
}

func (c *comComponent) codeModule() (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(c.disp, "CodeModule")
	if err != nil {
		return nil, newHostError(c.app, "get CodeModule of "+c.name, err)
	}

	return v.ToIDispatch(), nil
}

func (c *comComponent) LineCount() (int, error) {
	cm, err := c.codeModule()
	if err != nil {
		return 0, err
	}
	defer cm.Release()

	v, err := oleutil.GetProperty(cm, "CountOfLines")
	if err != nil {
		return 0, newHostError(c.app, "get CountOfLines of "+c.name, err)
	}
	defer v.Clear() //nolint:errcheck // Read-only variant.

	return int(v.Val), nil
}

func (c *comComponent) Source() (string, error) {
	cm, err := c.codeModule()
	if err != nil {
		return "", err
	}
	defer cm.Release()

	v, err := oleutil.GetProperty(cm, "CountOfLines")
	if err != nil {
		return "", newHostError(c.app, "get CountOfLines of "+c.name, err)
	}

	count := int(v.Val)
	_ = v.Clear()

	// Lines(1, 0) is rejected by the host; an empty module has no source.
	if count == 0 {
		return "", nil
	}

	v, err = oleutil.GetProperty(cm, "Lines", 1, count)
	if err != nil {
		return "", newHostError(c.app, "get Lines of "+c.name, err)
	}
	defer v.Clear() //nolint:errcheck // Read-only variant.

	return v.ToString(), nil
}
