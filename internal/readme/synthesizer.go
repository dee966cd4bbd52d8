package readme

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// PlaceholderTitle is used when no title can be derived from the input.
	PlaceholderTitle = "Project Title"

	// ProvenanceNote is appended to every synthesized document.
	ProvenanceNote = "*Note: This README was generated using a fallback template because the Gemini API was unavailable.*"

	// shortInputLimit is the length below which an input without a line break
	// or period is used whole as the title.
	shortInputLimit = 50

	// maxTitleLength is the number of characters kept from a derived title.
	maxTitleLength = 100

	// maxDescriptionLength is the number of characters of input kept in the
	// Description section.
	maxDescriptionLength = 500

	ellipsis = "..."
)

// bulletMarkers are the characters that introduce a feature line.
var bulletMarkers = []string{"•", "*", "-"}

var (
	placeholderFeatures     = "- Feature 1\n- Feature 2\n- Feature 3"
	placeholderTechnologies = "- Technology 1\n- Technology 2\n- Technology 3"
)

const installationSection = "```bash\n" +
	"# Clone the repository\n" +
	"git clone https://github.com/username/project.git\n" +
	"\n" +
	"# Navigate to the project directory\n" +
	"cd project\n" +
	"\n" +
	"# Install dependencies\n" +
	"npm install\n" +
	"\n" +
	"# Start the application\n" +
	"npm start\n" +
	"```"

const usageSection = "Describe how to use the project and provide examples."

const licenseSection = "MIT License"

var titleChain = chain{
	{
		name:    "placeholder",
		matches: func(s string) bool { return strings.TrimSpace(s) == "" },
		apply:   constant(PlaceholderTitle),
	},
	{
		name:    "first-line",
		matches: func(s string) bool { return strings.Contains(s, "\n") },
		apply: func(s string) string {
			first, _, _ := strings.Cut(s, "\n")
			return strings.TrimSpace(first)
		},
	},
	{
		name:    "first-sentence",
		matches: func(s string) bool { return strings.Contains(s, ".") },
		apply: func(s string) string {
			first, _, _ := strings.Cut(s, ".")
			return strings.TrimSpace(first)
		},
	},
	{
		name: "short-input",
		matches: func(s string) bool {
			return utf8.RuneCountInString(s) < shortInputLimit
		},
		apply: strings.TrimSpace,
	},
	{name: "placeholder", matches: always, apply: constant(PlaceholderTitle)},
}

var featureChain = chain{
	{
		name: "bullet-lines",
		matches: func(s string) bool {
			return containsAny(s, bulletMarkers) && len(bulletLines(s)) > 0
		},
		apply: func(s string) string {
			lines := bulletLines(s)
			items := make([]string, 0, len(lines))
			for _, line := range lines {
				items = append(items, "- "+stripMarker(line))
			}
			return strings.Join(items, "\n")
		},
	},
	{name: "placeholder", matches: always, apply: constant(placeholderFeatures)},
}

var technologyChain = chain{
	{
		name:    "vocabulary",
		matches: func(s string) bool { return len(DetectTechnologies(s)) > 0 },
		apply: func(s string) string {
			detected := DetectTechnologies(s)
			items := make([]string, 0, len(detected))
			for _, tech := range detected {
				items = append(items, "- "+tech)
			}
			return strings.Join(items, "\n")
		},
	},
	{name: "placeholder", matches: always, apply: constant(placeholderTechnologies)},
}

// Analysis holds every value derived from a description, along with the name
// of the rule that produced each field.
type Analysis struct {
	Title            string
	TitleRule        string
	Description      string
	Features         string
	FeaturesRule     string
	Technologies     string
	TechnologiesRule string
}

// Analyze derives the title, description, feature list and technology list
// from description. It never fails.
func Analyze(description string) Analysis {
	var a Analysis

	a.Title, a.TitleRule = titleChain.eval(description)
	a.Title = truncate(a.Title, maxTitleLength)

	a.Description = truncate(description, maxDescriptionLength)
	a.Features, a.FeaturesRule = featureChain.eval(description)
	a.Technologies, a.TechnologiesRule = technologyChain.eval(description)

	return a
}

// Synthesize builds a complete README document from a free-text project
// description. The same input always produces the same output.
func Synthesize(description string) string {
	return Analyze(description).Render()
}

// Render assembles the Markdown document.
func (a Analysis) Render() string {
	var b strings.Builder
	b.Grow(len(a.Description) + len(a.Features) + len(a.Technologies) + 768)

	b.WriteString("# " + a.Title + "\n\n")
	writeSection(&b, "Description", a.Description)
	writeSection(&b, "Features", a.Features)
	writeSection(&b, "Technologies Used", a.Technologies)
	writeSection(&b, "Installation", installationSection)
	writeSection(&b, "Usage", usageSection)
	b.WriteString("## License\n" + licenseSection + "\n\n")
	b.WriteString("---\n" + ProvenanceNote + "\n")

	return b.String()
}

func writeSection(b *strings.Builder, heading, body string) {
	b.WriteString("## ")
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n\n")
}

// bulletLines returns the lines whose trimmed form starts with a bullet marker.
func bulletLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, marker := range bulletMarkers {
			if strings.HasPrefix(trimmed, marker) {
				out = append(out, line)
				break
			}
		}
	}
	return out
}

// stripMarker removes a marker at the very start of line and the whitespace
// after it. Indented lines are returned unchanged, marker included, and the
// rest of the line (a trailing "\r" too) is kept as is.
func stripMarker(line string) string {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimLeftFunc(line[len(marker):], unicode.IsSpace)
		}
	}
	return line
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// truncate keeps the first limit characters of s and appends an ellipsis when
// anything was cut. Characters are counted as Unicode code points.
func truncate(s string, limit int) string {
	count := 0
	for i := range s {
		if count == limit {
			return s[:i] + ellipsis
		}
		count++
	}
	return s
}
