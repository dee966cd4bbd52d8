package readme

import "strings"

// vocabulary is the ordered list of recognized technologies. Output follows
// this order and casing, not the order of appearance in the input.
var vocabulary = []string{
	"React",
	"Next.js",
	"Vue",
	"Angular",
	"JavaScript",
	"TypeScript",
	"Node.js",
	"Express",
	"MongoDB",
	"PostgreSQL",
	"MySQL",
	"Firebase",
	"AWS",
	"Docker",
	"Kubernetes",
	"Python",
	"Django",
	"Flask",
	"Ruby",
	"Rails",
	"PHP",
	"Laravel",
	"Go",
	"Rust",
	"Swift",
	"Kotlin",
}

// lowerVocabulary mirrors vocabulary in lower case for matching.
var lowerVocabulary = func() []string {
	out := make([]string, len(vocabulary))
	for i, tech := range vocabulary {
		out[i] = strings.ToLower(tech)
	}
	return out
}()

// Vocabulary returns a copy of the recognized technology names in their
// canonical order.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// DetectTechnologies returns the vocabulary entries mentioned in text.
//
// Matching is a case-insensitive substring search with no word boundaries, so
// an entry can match inside a longer word ("mongodb" also yields "Go").
func DetectTechnologies(text string) []string {
	lower := strings.ToLower(text)
	var detected []string
	for i, tech := range lowerVocabulary {
		if strings.Contains(lower, tech) {
			detected = append(detected, vocabulary[i])
		}
	}
	return detected
}
