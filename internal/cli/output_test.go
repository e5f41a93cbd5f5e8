package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleworks/vbactl/internal/cli"
	"github.com/oleworks/vbactl/pkg/doctype"
	"github.com/oleworks/vbactl/pkg/olehost"
	"github.com/oleworks/vbactl/pkg/trustflag"
	"github.com/oleworks/vbactl/pkg/vbacmd"
	"github.com/oleworks/vbactl/pkg/vbaerrors"
	"github.com/oleworks/vbactl/pkg/vbaproject"
)

func renderToString(t *testing.T, format string, res *vbacmd.Result) string {
	t.Helper()

	cc := &cobra.Command{}
	stdout := &bytes.Buffer{}
	cc.SetOut(stdout)

	err := cli.RenderResult(cc, format, res)
	require.NoError(t, err)

	return stdout.String()
}

func inspectionResult() *vbacmd.Result {
	return &vbacmd.Result{
		RunID:       "11111111-2222-3333-4444-555555555555",
		Operation:   vbacmd.OperationInspect,
		File:        "Book1.xlsm",
		App:         doctype.Excel,
		PreflightOK: true,
		HostVersion: "16.0",
		Inspection: &vbaproject.Inspection{
			HasProject: true,
			Modules: []vbaproject.ModuleInfo{
				{Name: "Module1", Kind: olehost.StandardModule, LineCount: 12, Source: "Sub Macro1()\nEnd Sub"},
			},
		},
		Advisories: []string{"trust setting was enabled for this run"},
	}
}

func TestRenderResult(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		format string
		want   []string
	}{
		"json": {
			format: "json",
			want: []string{
				`"runId": "11111111-2222-3333-4444-555555555555"`,
				`"name": "Module1"`,
				`"preflightOk": true`,
			},
		},
		"yaml": {
			format: "yaml",
			want: []string{
				"runId: 11111111-2222-3333-4444-555555555555",
				"name: Module1",
			},
		},
		"text": {
			format: "text",
			want: []string{
				"inspect Book1.xlsm",
				"app: excel (host 16.0)",
				"Module1 (standard, 12 lines)",
				"advisory: trust setting was enabled for this run",
			},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := renderToString(t, tc.format, inspectionResult())
			for _, want := range tc.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRenderTextRemoval(t *testing.T) {
	t.Parallel()

	res := &vbacmd.Result{
		Operation:   vbacmd.OperationRemove,
		File:        "Book1.xlsm",
		App:         doctype.Excel,
		PreflightOK: true,
		HostVersion: "16.0",
		Removal: &vbacmd.RemovalReport{
			Outcome: vbaproject.Outcome{
				Kind:       vbaproject.OutcomeRemoved,
				Module:     "Module1",
				ModuleKind: olehost.StandardModule,
			},
			Saved: true,
		},
		Trust: &trustflag.State{ModifiedByRun: true, Reverted: true},
	}

	out := renderToString(t, "text", res)
	assert.Contains(t, out, "remove Book1.xlsm")
	assert.Contains(t, out, `outcome: removed "Module1", saved`)
	assert.Contains(t, out, "trust: modified, reverted=true")
}

func TestRenderTextDryRun(t *testing.T) {
	t.Parallel()

	res := &vbacmd.Result{
		Operation: vbacmd.OperationRemove,
		File:      "Book1.xlsm",
		Removal: &vbacmd.RemovalReport{
			Outcome: vbaproject.Outcome{
				Kind:   vbaproject.OutcomeRemoved,
				Module: "Module1",
			},
			DryRun: true,
		},
	}

	out := renderToString(t, "text", res)
	assert.Contains(t, out, `outcome (dry-run): removed "Module1"`)
	assert.NotContains(t, out, "saved")
}

func TestRenderTextFailure(t *testing.T) {
	t.Parallel()

	res := &vbacmd.Result{
		Operation: vbacmd.OperationInspect,
		File:      "Book1.xlsm",
		App:       doctype.Excel,
		Failure: &vbacmd.Failure{
			Kind:    vbaerrors.KindFileLocked,
			Message: "file is locked: Book1.xlsm",
		},
	}

	out := renderToString(t, "text", res)
	assert.Contains(t, out, "error (file_locked): file is locked: Book1.xlsm")
	assert.NotContains(t, out, "host")
}

func TestModuleExt(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		kind olehost.ComponentKind
		want string
	}{
		"standard module": {
			kind: olehost.StandardModule,
			want: ".bas",
		},
		"class module": {
			kind: olehost.ClassModule,
			want: ".cls",
		},
		"document module": {
			kind: olehost.DocumentModule,
			want: ".cls",
		},
		"form": {
			kind: olehost.Form,
			want: ".frm",
		},
		"unknown kind": {
			kind: olehost.KindFromCode(42),
			want: ".bas",
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, cli.ModuleExt(tc.kind))
		})
	}
}

func TestExportModules(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "modules")
	modules := []vbaproject.ModuleInfo{
		{Name: "Module1", Kind: olehost.StandardModule, LineCount: 2, Source: "Sub A()\nEnd Sub"},
		{Name: "ThisWorkbook", Kind: olehost.DocumentModule, LineCount: 1, Source: "' noop"},
	}

	err := cli.ExportModules(dir, modules)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "module_1.bas"))
	require.NoError(t, err)
	assert.Equal(t, "Sub A()\nEnd Sub", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "this_workbook.cls"))
	require.NoError(t, err)
	assert.Equal(t, "' noop", string(data))
}
