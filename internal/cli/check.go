package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathvm/mvmir/internal/ir"
)

// CheckResult holds well-formedness check results.
type CheckResult struct {
	Valid     bool         `json:"valid"`
	Functions int          `json:"functions"`
	Errors    []CheckIssue `json:"errors,omitempty"`
}

// CheckIssue is one structural error found in a program graph.
type CheckIssue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Function uint16 `json:"function"`
	Block    string `json:"block,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <program-file>",
		Short: "Check a program graph for well-formedness",
		Long: `Load a program document and run the structural checks: every
reachable block must carry a transition, every jump target must resolve
within its function and every call must resolve within the program.

All errors are collected and reported, not just the first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	p, err := LoadProgram(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	issues := collectIssues(ir.ValidateProgram(p))
	formatter.VerboseLog("Checked %d function(s), found %d issue(s)", len(p.Functions()), len(issues))

	if len(issues) > 0 {
		if opts.Format == "json" {
			if err := formatter.Error(ErrCodeInvalidIR,
				fmt.Sprintf("program graph has %d error(s)", len(issues)), issues); err != nil {
				return err
			}
		} else {
			for _, issue := range issues {
				fmt.Fprintf(formatter.Writer, "%s: %s (function=%d, block=%s)\n",
					issue.Code, issue.Message, issue.Function, issue.Block)
			}
			fmt.Fprintf(formatter.Writer, "%d error(s)\n", len(issues))
		}
		return NewExitError(ExitFailure, "program graph is malformed")
	}

	if opts.Format == "json" {
		return formatter.Success(CheckResult{Valid: true, Functions: len(p.Functions())})
	}
	fmt.Fprintf(formatter.Writer, "ok: %d function(s), graph is well-formed\n", len(p.Functions()))
	return nil
}

func collectIssues(errs []error) []CheckIssue {
	var issues []CheckIssue
	for _, err := range errs {
		var se *ir.StructError
		if errors.As(err, &se) {
			issues = append(issues, CheckIssue{
				Code:     string(se.Code),
				Message:  se.Message,
				Function: se.FunctionID,
				Block:    se.Block,
			})
			continue
		}
		issues = append(issues, CheckIssue{Code: ErrCodeGeneric, Message: err.Error()})
	}
	return issues
}
