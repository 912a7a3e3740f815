package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surveyorhq/surveyor/internal/ontology"
)

// NodeSummary summarizes one node mapping.
type NodeSummary struct {
	NodeLabel        string `json:"node_label"`
	Fields           int    `json:"fields"`
	EligibleAsSource bool   `json:"eligible_as_source,omitempty"`
}

// ModuleSummary summarizes one module's ontology mapping.
type ModuleSummary struct {
	Module        string        `json:"module"`
	Nodes         []NodeSummary `json:"nodes,omitempty"`
	Rels          int           `json:"rels"`
	IterativeRels int           `json:"iterative_rels,omitempty"`
}

// ShowResult holds the summary of all loaded mappings.
type ShowResult struct {
	Files   int             `json:"files"`
	Modules []ModuleSummary `json:"modules"`
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <mappings-dir>",
		Short: "Summarize loaded ontology mappings",
		Long: `Load the mapping documents in a directory and print, per module, the
mapped node labels with their derived field counts and the declared
relationship-propagation rules.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runShow(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, loadErrs := ontology.LoadDir(dir)
	if result == nil {
		message := loadErrs[0].Error()
		_ = formatter.Failure(ErrCodeLoad, message, nil)
		return NewExitError(ExitCommandError, message)
	}
	if len(loadErrs) > 0 {
		// show requires a clean load; point the user at validate.
		message := fmt.Sprintf("%d mapping document(s) failed to load; run validate for details", len(loadErrs))
		_ = formatter.Failure(ErrCodeInvalid, message, nil)
		return NewExitError(ExitFailure, message)
	}

	summary := summarize(result)
	if formatter.Format == "json" {
		return formatter.Success(summary)
	}

	fmt.Fprintf(formatter.Writer, "Loaded %d mapping document(s)\n\n", summary.Files)
	for _, mod := range summary.Modules {
		fmt.Fprintf(formatter.Writer, "Module %s:\n", mod.Module)
		for _, node := range mod.Nodes {
			suffix := ""
			if node.EligibleAsSource {
				suffix = " [source]"
			}
			fmt.Fprintf(formatter.Writer, "  %s: %d field(s)%s\n", node.NodeLabel, node.Fields, suffix)
		}
		if mod.Rels > 0 {
			fmt.Fprintf(formatter.Writer, "  %d propagation rule(s), %d iterative\n", mod.Rels, mod.IterativeRels)
		}
		fmt.Fprintln(formatter.Writer)
	}
	return nil
}

func summarize(result *ontology.LoadResult) ShowResult {
	summary := ShowResult{Files: len(result.Files)}
	for _, m := range result.Mappings {
		mod := ModuleSummary{Module: m.ModuleName, Rels: len(m.Rels)}
		for _, node := range m.Nodes {
			mod.Nodes = append(mod.Nodes, NodeSummary{
				NodeLabel:        node.NodeLabel,
				Fields:           len(node.Fields),
				EligibleAsSource: node.EligibleAsSource,
			})
		}
		for _, rel := range m.Rels {
			if rel.Iterative {
				mod.IterativeRels++
			}
		}
		summary.Modules = append(summary.Modules, mod)
	}
	return summary
}
