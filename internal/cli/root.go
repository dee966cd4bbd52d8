// Package cli implements the readmegen command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/readme-api/internal/app"
	"github.com/phrazzld/readme-api/internal/config"
	"github.com/phrazzld/readme-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "readmegen",
		Short: "Generate README files from project descriptions",
		Long: `readmegen turns a free-text project description into a README.

The generate command uses the Gemini API when an API key is configured and
falls back to a deterministic local template otherwise. The fallback command
always uses the local template and needs no configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newFallbackCmd())
	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))
	cmd.AddCommand(newVocabularyCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "readmegen version %s\n", Version)
		},
	})

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

// readDescription returns the description from args, from file ("-" means
// stdin) or, when useStdin is set and neither is given, from stdin.
func readDescription(cmd *cobra.Command, args []string, file string, useStdin bool) (string, error) {
	switch {
	case len(args) > 0 && file != "":
		return "", fmt.Errorf("pass the description as arguments or with --file, not both")
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file == "-":
		return readAll(cmd.InOrStdin())
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read description: %w", err)
		}
		return string(data), nil
	case useStdin:
		return readAll(cmd.InOrStdin())
	default:
		return "", nil
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return string(data), nil
}

// writeOutput writes content to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// buildComponents loads configuration the way the server does, applies the
// --log-level override and wires the readme service. Logs go to stderr.
func buildComponents(cmd *cobra.Command, root *rootOptions) (*app.Components, error) {
	cfg, err := config.LoadFile(root.configPath)
	if err != nil {
		return nil, err
	}
	if root.logLevel != "" {
		cfg.Server.LogLevel = root.logLevel
	}

	log, err := logger.SetupWithWriter(cfg.Server, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return app.Build(cmd.Context(), cfg, log, app.Options{DisableMetrics: true})
}
