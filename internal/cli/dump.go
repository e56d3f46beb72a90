package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathvm/mvmir/internal/disasm"
	"github.com/mathvm/mvmir/internal/irtext"
)

// DumpResult is the dump command payload for JSON output.
type DumpResult struct {
	ProgramID string `json:"program_id"`
	Functions int    `json:"functions"`
	Listing   string `json:"listing"`
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <program-file>",
		Short: "Disassemble a program document",
		Long: `Load a JSON or YAML program document and print its disassembly.

The listing shows every function with its parameter list, literal pool,
blocks with predecessor edges, statements and transitions.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDump(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	p, err := LoadProgram(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded %d function(s) from %s", len(p.Functions()), path)

	id, err := irtext.ProgramID(p)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "computing program id", err)
	}

	listing := disasm.Program(p)
	if opts.Format == "json" {
		return formatter.Success(DumpResult{
			ProgramID: id,
			Functions: len(p.Functions()),
			Listing:   listing,
		})
	}

	fmt.Fprintf(formatter.Writer, "; program %s\n%s", id, listing)
	return nil
}

// newFormatter builds the standard formatter for a command invocation.
// Verbose logs go to stderr to avoid corrupting JSON output.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// outputLoadError renders a document loading failure and converts it to
// an ExitError carrying the command-error exit code.
func outputLoadError(f *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		f.Error(loadErr.Code, loadErr.Message, nil)
		return NewExitError(ExitCommandError, loadErr.Message)
	}
	f.Error(ErrCodeGeneric, err.Error(), nil)
	return NewExitError(ExitCommandError, err.Error())
}
