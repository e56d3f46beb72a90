package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathvm/mvmir/internal/ir"
	"github.com/mathvm/mvmir/internal/store"
)

// ArchiveResult is the archive command payload for JSON output.
type ArchiveResult struct {
	ProgramID string `json:"program_id"`
	BuildID   string `json:"build_id"`
	Seq       int64  `json:"seq"`
	Inserted  bool   `json:"inserted"`
	Label     string `json:"label,omitempty"`
}

// NewArchiveCommand creates the archive command.
func NewArchiveCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dbPath string
		label  string
	)

	cmd := &cobra.Command{
		Use:   "archive <program-file>",
		Short: "Archive a program under its content-addressed id",
		Long: `Load a program document, check it for well-formedness and store its
canonical form in the archive database. Archiving is idempotent: the
same program always maps to the same id. Every archive run appends one
entry to the build log.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArchive(rootOpts, args[0], dbPath, label, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "mvmir.db", "archive database path")
	cmd.Flags().StringVar(&label, "label", "", "optional build label")

	return cmd
}

func runArchive(opts *RootOptions, path, dbPath, label string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	p, err := LoadProgram(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	// Only well-formed graphs are archived.
	if errs := ir.ValidateProgram(p); len(errs) > 0 {
		if err := formatter.Error(ErrCodeInvalidIR,
			fmt.Sprintf("refusing to archive: program graph has %d error(s)", len(errs)),
			collectIssues(errs)); err != nil {
			return err
		}
		return NewExitError(ExitFailure, "program graph is malformed")
	}

	s, err := store.Open(dbPath)
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening archive", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	programID, inserted, err := s.SaveProgram(ctx, p)
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "saving program", err)
	}
	formatter.VerboseLog("Program %s (inserted=%t)", programID, inserted)

	build, err := s.RecordBuild(ctx, programID, label)
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "recording build", err)
	}

	if opts.Format == "json" {
		return formatter.Success(ArchiveResult{
			ProgramID: programID,
			BuildID:   build.ID,
			Seq:       build.Seq,
			Inserted:  inserted,
			Label:     label,
		})
	}

	verb := "archived"
	if !inserted {
		verb = "already archived"
	}
	fmt.Fprintf(formatter.Writer, "%s %s (build %s, seq %d)\n", verb, programID, build.ID, build.Seq)
	return nil
}
