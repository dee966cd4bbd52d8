package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	t.Parallel()

	valid := []struct {
		input string
		owner string
		name  string
	}{
		{"https://github.com/phrazzld/readme-api", "phrazzld", "readme-api"},
		{"https://github.com/phrazzld/readme-api/", "phrazzld", "readme-api"},
		{"https://github.com/phrazzld/readme-api.git", "phrazzld", "readme-api"},
		{"http://www.github.com/Acme/Widget", "Acme", "Widget"},
		{"github.com/acme/widget.js", "acme", "widget.js"},
		{"  https://github.com/acme/widget/tree/main/docs  ", "acme", "widget"},
		{"https://GitHub.com/acme/widget?tab=readme", "acme", "widget"},
	}
	for _, tc := range valid {
		t.Run(tc.input, func(t *testing.T) {
			ref, err := ParseRepoURL(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.owner, ref.Owner)
			assert.Equal(t, tc.name, ref.Name)
			assert.Equal(t, tc.owner+"/"+tc.name, ref.String())
		})
	}

	invalid := []string{
		"",
		"   ",
		"https://gitlab.com/acme/widget",
		"https://github.com/acme",
		"https://github.com/",
		"ftp://github.com/acme/widget",
		"https://github.com/-acme/widget",
		"https://github.com/acme/wid get",
		"https://github.com/acme/..",
		"not a url at all",
	}
	for _, input := range invalid {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := ParseRepoURL(input)
			assert.ErrorIs(t, err, ErrInvalidRepoURL)
		})
	}
}

func TestRepositorySummary(t *testing.T) {
	t.Parallel()

	repo := &Repository{
		Ref:         RepoRef{Owner: "acme", Name: "widget"},
		Description: "Widgets for everyone",
		License:     "MIT",
		Languages:   []string{"TypeScript", "CSS"},
		Topics:      []string{"widgets"},
		Package: &PackageManifest{
			Name:         "widget",
			Dependencies: map[string]string{"react": "^18", "next": "14"},
			Scripts:      map[string]string{"test": "jest", "build": "next build"},
		},
		Commits: []string{"Add dark mode", "Initial commit"},
		Readme:  "# Widget\nOld docs",
	}

	summary := repo.Summary()

	assert.True(t, strings.HasPrefix(summary, "Repository context:\nName: acme/widget\n"))
	assert.Contains(t, summary, "Description: Widgets for everyone\n")
	assert.Contains(t, summary, "Languages: TypeScript, CSS\n")
	assert.Contains(t, summary, "Dependencies: next, react\n")
	assert.Contains(t, summary, "Scripts:\n- build: next build\n- test: jest\n")
	assert.Contains(t, summary, "Recent commits:\n- Add dark mode\n- Initial commit\n")
	assert.True(t, strings.HasSuffix(summary, "Existing README:\n# Widget\nOld docs"))
	assert.NotContains(t, summary, "Homepage:", "empty fields are omitted")
	assert.NotContains(t, summary, "Dev dependencies:")
}

func TestRepositorySummaryTruncatesReadme(t *testing.T) {
	t.Parallel()

	repo := &Repository{Ref: RepoRef{Owner: "a", Name: "b"}, Readme: strings.Repeat("é", readmeExcerptLimit+10)}
	summary := repo.Summary()
	assert.True(t, strings.HasSuffix(summary, strings.Repeat("é", 10)+"\n[truncated]"))
	assert.NotContains(t, summary, strings.Repeat("é", readmeExcerptLimit+1))

	var nilRepo *Repository
	assert.Empty(t, nilRepo.Summary())
}

func TestRepositoryFallbackDescription(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		repo     *Repository
		expected string
	}{
		{"nil", nil, ""},
		{"name only", &Repository{Ref: RepoRef{Owner: "a", Name: "widget"}}, "widget"},
		{
			"name and description",
			&Repository{Ref: RepoRef{Owner: "a", Name: "widget"}, Description: " Widgets. "},
			"widget\nWidgets.",
		},
		{
			"package description used when repo has none",
			&Repository{Ref: RepoRef{Owner: "a", Name: "widget"}, Package: &PackageManifest{Description: "From npm"}},
			"widget\nFrom npm",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.repo.FallbackDescription())
		})
	}
}

func TestReadmeUsedFallback(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Readme{Source: SourceFallback}).UsedFallback())
	assert.False(t, (&Readme{Source: SourceGemini}).UsedFallback())
}
