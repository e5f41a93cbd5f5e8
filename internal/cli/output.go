package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/oleworks/vbactl/pkg/vbacmd"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// getOutputFormat resolves the output format from the persistent flag. An
// empty flag defaults to text on a terminal and json when piped.
func getOutputFormat(cc *cobra.Command) (string, error) {
	format, err := cc.Flags().GetString("output")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	switch strings.ToLower(format) {
	case outputText, outputJSON, outputYAML:
		return strings.ToLower(format), nil
	case "":
	default:
		return "", fmt.Errorf("%w: unknown output format %q", ErrInvalidArgument, format)
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		return outputText, nil
	}

	return outputJSON, nil
}

func renderResult(cc *cobra.Command, format string, res *vbacmd.Result) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cc.Println(string(data))
	case outputYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cc.Print(string(data))
	default:
		renderText(cc, res)
	}

	return nil
}

func renderText(cc *cobra.Command, res *vbacmd.Result) {
	cc.Printf("%s %s\n", res.Operation, res.File)

	if res.App != "" {
		if res.HostVersion != "" {
			cc.Printf("  app: %s (host %s)\n", res.App, res.HostVersion)
		} else {
			cc.Printf("  app: %s\n", res.App)
		}
	}

	if res.Inspection != nil {
		if len(res.Inspection.Modules) > 0 {
			cc.Println("  modules:")
			for _, m := range res.Inspection.Modules {
				cc.Printf("    %s (%s, %d lines)\n", m.Name, m.Kind, m.LineCount)
			}
		} else {
			cc.Println("  modules: none")
		}
	}

	if res.Removal != nil {
		label := "outcome"
		if res.Removal.DryRun {
			label = "outcome (dry-run)"
		}
		line := fmt.Sprintf("  %s: %s %q", label, res.Removal.Outcome.Kind, res.Removal.Outcome.Module)
		if res.Removal.Saved {
			line += ", saved"
		}
		cc.Println(line)
	}

	if res.Trust != nil && res.Trust.ModifiedByRun {
		cc.Printf("  trust: modified, reverted=%t\n", res.Trust.Reverted)
	}

	for _, adv := range res.Advisories {
		cc.Printf("  advisory: %s\n", adv)
	}

	if res.Failure != nil {
		cc.Printf("  error (%s): %s\n", res.Failure.Kind, res.Failure.Message)
	}
}
