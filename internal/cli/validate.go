package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/surveyorhq/surveyor/internal/ontology"
)

// ValidationIssue is one problem found in a mapping document.
type ValidationIssue struct {
	File    string `json:"file,omitempty"`
	Message string `json:"message"`
}

// ValidationResult holds validation results for a mappings directory.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Files  int               `json:"files"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <mappings-dir>",
		Short: "Validate ontology mapping documents",
		Long: `Validate every mapping document in a directory.

Each document is checked against the mapping schema (structure, derivation
names, required keys) and the set is checked for registry conflicts such as
two modules claiming the same node label.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	slog.Debug("starting validation", "run_id", uuid.NewString(), "dir", dir)

	result, loadErrs := ontology.LoadDir(dir)
	if result == nil {
		// Directory-level failure: nothing was loadable at all.
		message := loadErrs[0].Error()
		_ = formatter.Failure(ErrCodeLoad, message, nil)
		return NewExitError(ExitCommandError, message)
	}

	formatter.VerboseLog("Found %d mapping document(s) in %s", len(result.Files), dir)

	var issues []ValidationIssue
	for _, err := range loadErrs {
		var loadErr *ontology.LoadError
		if errors.As(err, &loadErr) {
			issues = append(issues, ValidationIssue{File: loadErr.Path, Message: loadErr.Message})
		} else {
			issues = append(issues, ValidationIssue{Message: err.Error()})
		}
	}

	// Registry conflicts only make sense across documents that loaded.
	if _, err := ontology.NewRegistryFromMappings(result.Mappings); err != nil {
		issues = append(issues, ValidationIssue{Message: err.Error()})
	}

	report := ValidationResult{
		Valid:  len(issues) == 0,
		Files:  len(result.Files),
		Issues: issues,
	}
	if !report.Valid {
		return outputValidationFailure(formatter, report)
	}
	return outputValidationSuccess(formatter, report)
}

func outputValidationSuccess(formatter *OutputFormatter, report ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(report)
	}
	fmt.Fprintf(formatter.Writer, "✓ %d mapping document(s) valid\n", report.Files)
	return nil
}

func outputValidationFailure(formatter *OutputFormatter, report ValidationResult) error {
	if formatter.Format == "json" {
		code := ErrCodeInvalid
		message := report.Issues[0].Message
		if err := formatter.Failure(code, message, report); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(report.Issues)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, issue := range report.Issues {
		if issue.File != "" {
			fmt.Fprintln(formatter.Writer, issue.File)
		}
		fmt.Fprintf(formatter.Writer, "  %s\n\n", issue.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(report.Issues)))
}
