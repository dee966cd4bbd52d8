package cli

import (
	"fmt"

	"github.com/phrazzld/readme-api/internal/readme"
	"github.com/spf13/cobra"
)

func newFallbackCmd() *cobra.Command {
	var (
		file    string
		output  string
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "fallback [description...]",
		Short: "Build a README with the local template",
		Long: `Build a README from a description using only the deterministic local
template. The description is read from the arguments, from --file, or from
stdin when neither is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			description, err := readDescription(cmd, args, file, true)
			if err != nil {
				return err
			}

			analysis := readme.Analyze(description)
			if explain {
				w := cmd.ErrOrStderr()
				fmt.Fprintf(w, "title: %s\n", analysis.TitleRule)
				fmt.Fprintf(w, "features: %s\n", analysis.FeaturesRule)
				fmt.Fprintf(w, "technologies: %s\n", analysis.TechnologiesRule)
			}
			return writeOutput(cmd, output, analysis.Render())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the description from a file (- for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the README to a file instead of stdout")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the rule that produced each derived field to stderr")

	return cmd
}
