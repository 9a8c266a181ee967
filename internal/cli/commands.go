package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newFmtCommand() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Print documents as canonical HCL",
		Long: `Load every .tf, .hcl, .yaml, .yml or .json file under the given paths,
check it for duplicate declarations and print it as canonical HCL.

With --write, HCL files are rewritten in place and other documents are
written next to their source with a .tf extension. Files are only written
when every input succeeds.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := appFrom(cmd).Format(cmd.Context(), args, write)
			return err
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write results to files instead of standard output")
	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check documents for duplicate declarations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := appFrom(cmd).Check(cmd.Context(), args)
			if err != nil {
				return &ExitError{Code: ExitFailure, Message: err.Error()}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) OK\n", len(results))
			return nil
		},
	}
}

func newInspectCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the declarations of a document as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markdown, err := markdownOutput(format)
			if err != nil {
				return &ExitError{Code: ExitUsage, Message: err.Error()}
			}
			return appFrom(cmd).Inspect(cmd.Context(), args[0], markdown)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "auto", "Table format: auto, table or markdown")
	return cmd
}

// markdownOutput resolves the table format. auto picks a box table on a
// terminal and Markdown otherwise.
func markdownOutput(format string) (bool, error) {
	switch format {
	case "table":
		return false, nil
	case "markdown", "md":
		return true, nil
	case "auto":
		return !term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return false, fmt.Errorf("invalid output format %q: must be 'auto', 'table' or 'markdown'", format)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "blockform v%s (%s)\n", Version, GitCommit)
		},
	}
}
