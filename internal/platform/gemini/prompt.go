package gemini

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"text/template"

	"github.com/phrazzld/readme-api/internal/generation"
)

//go:embed prompts/readme.tmpl
var defaultPromptTemplate string

// loadPromptTemplate parses the template at path, or the embedded default when
// path is empty.
func loadPromptTemplate(path string) (*template.Template, error) {
	name, content := "readme", defaultPromptTemplate
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				generation.ErrInvalidConfig, path, err)
		}
		name, content = path, string(raw)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}
	return tmpl, nil
}

// createPrompt renders the instruction prompt for req.
func createPrompt(
	ctx context.Context,
	logger *slog.Logger,
	tmpl *template.Template,
	req generation.Request,
) (string, error) {
	data := promptData{
		RepositoryName:       req.RepositoryName,
		HasRepositoryContext: req.Repository != nil && req.Repository.Summary() != "",
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	logger.DebugContext(ctx, "Prompt generated successfully",
		"template_name", tmpl.Name(),
		"prompt_length", buf.Len())

	return buf.String(), nil
}
