package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"

	"github.com/oleworks/vbactl/pkg/olehost"
	"github.com/oleworks/vbactl/pkg/vbaproject"
)

// moduleExt maps a component kind to the conventional source file extension.
func moduleExt(kind olehost.ComponentKind) string {
	switch kind {
	case olehost.ClassModule, olehost.DocumentModule:
		return ".cls"
	case olehost.Form:
		return ".frm"
	default:
		return ".bas"
	}
}

// exportModules writes each module's source to dir, one file per module.
func exportModules(dir string, modules []vbaproject.ModuleInfo) error {
	err := os.MkdirAll(dir, 0o750)
	if err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	for _, m := range modules {
		name := strcase.ToSnake(m.Name) + moduleExt(m.Kind)
		path := filepath.Join(dir, name)

		err := os.WriteFile(path, []byte(m.Source), 0o600)
		if err != nil {
			return fmt.Errorf("failed to export module %q: %w", m.Name, err)
		}
	}

	return nil
}
