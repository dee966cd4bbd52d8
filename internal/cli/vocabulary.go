package cli

import (
	"fmt"
	"strings"

	"github.com/phrazzld/readme-api/internal/readme"
	"github.com/spf13/cobra"
)

func newVocabularyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocabulary [text...]",
		Short: "List recognized technologies",
		Long: `Without arguments, print every technology the local template recognizes,
in output order. With arguments, print the technologies detected in the text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := readme.Vocabulary()
			if len(args) > 0 {
				names = readme.DetectTechnologies(strings.Join(args, " "))
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
