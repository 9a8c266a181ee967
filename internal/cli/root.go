package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vk/blockform/internal/app"
	"github.com/vk/blockform/internal/config"
	"github.com/vk/blockform/internal/ctxlog"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// appKey is used to store the app in the command context.
type appKey struct{}

// NewRootCmd creates the root command. Results go to outW, logs and errors
// to errW.
func NewRootCmd(outW, errW io.Writer) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "blockform",
		Short: "blockform - canonical HCL from documents and element trees",
		Long: `blockform reads HCL, YAML or JSON configuration documents, checks them
for duplicate declarations and prints them as canonical HCL.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}

			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, used, err := config.Load(cfgFile, dir, cmd.Flags())
			if err != nil {
				return &ExitError{Code: ExitUsage, Message: err.Error()}
			}

			a := app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
			ctx := a.Context(cmd.Context())
			if used != "" {
				ctxlog.FromContext(ctx).Debug("Using config file.", "path", used)
			}
			cmd.SetContext(context.WithValue(ctx, appKey{}, a))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.FileName+")")
	flags.String("log-level", "", "Logging level: debug, info, warn or error")
	flags.String("log-format", "", "Log output format: text or json")
	flags.Int("indent", 0, "Spaces per nesting level in printed output")
	flags.StringSlice("block-keys", nil, "Extra attribute names whose maps print as blocks")
	flags.String("fallback-container", "", "Attribute that collects non-identifier keys")
	flags.Int("workers", 0, "Number of files processed concurrently")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newFmtCommand(),
		newCheckCommand(),
		newInspectCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

// appFrom returns the app stored by PersistentPreRunE.
func appFrom(cmd *cobra.Command) *app.App {
	return cmd.Context().Value(appKey{}).(*app.App)
}

// Run executes the CLI with args. Failures that carry a specific exit code
// are returned as *ExitError.
func Run(ctx context.Context, args []string, outW, errW io.Writer) error {
	rootCmd := NewRootCmd(outW, errW)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		return err
	}
	return nil
}
