package olehosttest

import (
	"fmt"
	"strings"

	"github.com/oleworks/vbactl/pkg/doctype"
	"github.com/oleworks/vbactl/pkg/olehost"
)

// NewFactory wires a fake factory, host, and document together around doc.
func NewFactory(doc *Document) *Factory {
	return &Factory{Host: &Host{Doc: doc}}
}

type Factory struct {
	Host        *Host
	LaunchErr   error
	LaunchCalls int
}

func (f *Factory) Launch(_ doctype.DocType) (olehost.Host, error) {
	f.LaunchCalls++

	if f.LaunchErr != nil {
		return nil, f.LaunchErr
	}

	return f.Host, nil
}

type Host struct {
	Doc         *Document
	HostVersion string
	OpenErr     error
	QuitErr     error
	OpenCalls   int
	QuitCalls   int
	LastPath    string
	LastMode    olehost.OpenMode
}

func (h *Host) Version() string {
	if h.HostVersion == "" {
		return "16.0"
	}

	return h.HostVersion
}

func (h *Host) OpenDocument(path string, mode olehost.OpenMode) (olehost.Document, error) {
	h.OpenCalls++
	h.LastPath = path
	h.LastMode = mode

	if h.OpenErr != nil {
		return nil, h.OpenErr
	}

	return h.Doc, nil
}

func (h *Host) Quit() error {
	h.QuitCalls++

	return h.QuitErr
}

type Document struct {
	Proj       *Project
	DocName    string
	HasErr     error
	ProjErr    error
	SaveErr    error
	CloseErr   error
	SaveCalls  int
	CloseCalls int

	// HasProperty reports whether the document exposes a project presence
	// property at all; when false, HasMacroProject returns ErrNotSupported.
	HasProperty bool
	// NoProject makes the presence property report false.
	NoProject bool
}

func (d *Document) Name() string {
	return d.DocName
}

func (d *Document) HasMacroProject() (bool, error) {
	if d.HasErr != nil {
		return false, d.HasErr
	}

	if !d.HasProperty {
		return false, olehost.ErrNotSupported
	}

	return !d.NoProject, nil
}

func (d *Document) Project() (olehost.Project, error) {
	if d.ProjErr != nil {
		return nil, d.ProjErr
	}

	return d.Proj, nil
}

func (d *Document) Save() error {
	d.SaveCalls++

	return d.SaveErr
}

func (d *Document) Close() error {
	d.CloseCalls++

	return d.CloseErr
}

type Project struct {
	ComponentsErr error
	LookupErr     error
	RemoveErr     error
	Comps         []*Component
	RemoveCalls   int
}

// Len reports how many components remain in the project.
func (p *Project) Len() int {
	return len(p.Comps)
}

func (p *Project) Components() ([]olehost.Component, error) {
	if p.ComponentsErr != nil {
		return nil, p.ComponentsErr
	}

	comps := make([]olehost.Component, 0, len(p.Comps))
	for _, c := range p.Comps {
		comps = append(comps, c)
	}

	return comps, nil
}

func (p *Project) Lookup(name string) (olehost.Component, bool, error) {
	if p.LookupErr != nil {
		return nil, false, p.LookupErr
	}

	for _, c := range p.Comps {
		if c.CompName == name {
			return c, true, nil
		}
	}

	return nil, false, nil
}

func (p *Project) Remove(c olehost.Component) error {
	p.RemoveCalls++

	if p.RemoveErr != nil {
		return p.RemoveErr
	}

	for i, pc := range p.Comps {
		if pc == c {
			p.Comps = append(p.Comps[:i], p.Comps[i+1:]...)

			return nil
		}
	}

	return fmt.Errorf("component %q is not in the project", c.Name())
}

type Component struct {
	LineCountErr error
	SourceErr    error
	CompName     string
	Src          string
	CompKind     olehost.ComponentKind
}

func (c *Component) Name() string {
	return c.CompName
}

func (c *Component) Kind() olehost.ComponentKind {
	return c.CompKind
}

func (c *Component) LineCount() (int, error) {
	if c.LineCountErr != nil {
		return 0, c.LineCountErr
	}

	if c.Src == "" {
		return 0, nil
	}

	return strings.Count(c.Src, "\n") + 1, nil
}

func (c *Component) Source() (string, error) {
	if c.SourceErr != nil {
		return "", c.SourceErr
	}

	return c.Src, nil
}
