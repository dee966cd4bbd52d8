package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/readme-api/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var (
		file     string
		repoURL  string
		output   string
		noGemini bool
	)

	cmd := &cobra.Command{
		Use:   "generate [description...]",
		Short: "Generate a README with Gemini, falling back to the local template",
		Long: `Generate a README the same way the API server does. Configuration is read
from config.yaml and READMEGEN_* environment variables; GEMINI_API_KEY and
GITHUB_TOKEN are honored as well.

The description is read from the arguments or --file. Without either, stdin
is read unless --repo is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			description, err := readDescription(cmd, args, file, repoURL == "")
			if err != nil {
				return err
			}
			if description == "" && repoURL == "" {
				return errors.New("a description or --repo is required")
			}

			ctx := cmd.Context()
			c, err := buildComponents(cmd, root)
			if err != nil {
				return err
			}

			result, err := c.ReadmeService.Generate(ctx, service.GenerateInput{
				Input:     description,
				RepoURL:   repoURL,
				UseGemini: !noGemini,
			})
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			if result.Warning != "" {
				fmt.Fprintf(stderr, "warning: %s\n", result.Warning)
			}
			if result.Error != "" {
				fmt.Fprintf(stderr, "gemini error (%s): %s\n", result.ErrorType, result.Error)
			}
			fmt.Fprintf(stderr, "source: %s\n", result.Source)

			content := result.Content
			if !strings.HasSuffix(content, "\n") {
				content += "\n"
			}
			return writeOutput(cmd, output, content)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the description from a file (- for stdin)")
	cmd.Flags().StringVar(&repoURL, "repo", "", "GitHub repository URL to enrich the README with")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the README to a file instead of stdout")
	cmd.Flags().BoolVar(&noGemini, "no-gemini", false, "use the local template only")

	return cmd
}
