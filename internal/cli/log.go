package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathvm/mvmir/internal/store"
)

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dbPath    string
		limit     int
		programID string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the archive build log",
		Long: `List build-log entries from the archive database, newest first.
With --program, lists only the builds of that program, oldest first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(rootOpts, dbPath, limit, programID, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "mvmir.db", "archive database path")
	cmd.Flags().IntVar(&limit, "limit", 10, "max entries to show (0 = all)")
	cmd.Flags().StringVar(&programID, "program", "", "show builds of one program only")

	return cmd
}

func runLog(opts *RootOptions, dbPath string, limit int, programID string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := store.Open(dbPath)
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening archive", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	var builds []store.Build
	if programID != "" {
		builds, err = s.ListBuilds(ctx, programID)
	} else {
		builds, err = s.BuildLog(ctx, limit)
	}
	if err != nil {
		formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading build log", err)
	}

	if opts.Format == "json" {
		return formatter.Success(builds)
	}

	if len(builds) == 0 {
		fmt.Fprintln(formatter.Writer, "no builds recorded")
		return nil
	}
	for _, b := range builds {
		line := fmt.Sprintf("%4d  %s  %s  %s", b.Seq, b.ID, b.ProgramID, b.CreatedAt)
		if b.Label != "" {
			line += "  " + b.Label
		}
		fmt.Fprintln(formatter.Writer, line)
	}
	return nil
}
