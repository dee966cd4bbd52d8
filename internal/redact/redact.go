// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. This package helps prevent
// the accidental leakage of API keys, access tokens, credentials in URLs, file paths
// and other sensitive data that might be included in upstream error messages.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
)

// replacement pairs a pattern with its replacement template. Templates may
// reference capture groups with ${n}.
type replacement struct {
	pattern  *regexp.Regexp
	template string
}

// Precompiled regex patterns
var (
	// Google API keys, as used for the Gemini API
	googleAPIKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	// GitHub personal access, OAuth, app and fine-grained tokens
	githubTokenRegex = regexp.MustCompile(`\b(?:gh[pousr]_[A-Za-z0-9]{20,}|github_pat_[A-Za-z0-9_]{20,})`)

	// JWT token pattern - matches the standard three-part base64url-encoded JWT token format
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Keys passed as query parameters, e.g. ?key=... on generativelanguage URLs
	keyQueryRegex = regexp.MustCompile(`([?&](?:key|access_token|token)=)[^&\s"']+`)

	bearerRegex = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`)

	// user:password@ in any URL
	urlCredentialRegex = regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.-]*://[^/\s:@]+:[^/\s@]+@`)

	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)
	apiKeyRegex   = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)
	awsKeyRegex = regexp.MustCompile(`(AKIA|AccessKey(Id)?)([^a-zA-Z0-9])?[A-Z0-9]{8,}`)

	// Stack trace fragments
	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// File paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	// secretPatterns cover credentials only. Order matters: specific token
	// formats run before the generic key=value pattern.
	secretPatterns = []replacement{
		{googleAPIKeyRegex, RedactedKeyPlaceholder},
		{githubTokenRegex, RedactedTokenPlaceholder},
		{jwtTokenRegex, "[REDACTED_JWT]"},
		{keyQueryRegex, "${1}" + RedactedKeyPlaceholder},
		{bearerRegex, "${1}" + RedactedTokenPlaceholder},
		{urlCredentialRegex, RedactedCredentialPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
		{apiKeyRegex, RedactedKeyPlaceholder},
		{awsKeyRegex, RedactedKeyPlaceholder},
	}

	// logPatterns additionally hide details that are fine for clients to see
	// in upstream messages but should not reach shared logs.
	logPatterns = []replacement{
		{stackTraceRegex, "[STACK_TRACE_REDACTED]"},
		{emailRegex, "[REDACTED_EMAIL]"},
		{unixPathRegex, RedactedPathPlaceholder},
		{winPathRegex, RedactedPathPlaceholder},
	}
)

func apply(input string, sets ...[]replacement) string {
	if input == "" {
		return input
	}
	result := input
	for _, set := range sets {
		for _, r := range set {
			result = r.pattern.ReplaceAllString(result, r.template)
		}
	}
	return result
}

// String redacts sensitive information from the input string. It is meant for
// log output and removes credentials, stack traces, email addresses and file paths.
func String(input string) string {
	return apply(input, secretPatterns, logPatterns)
}

// Secrets removes only credentials (API keys, tokens, passwords) from input.
// Use it for messages returned to API clients, where the rest of an upstream
// error message is useful.
func Secrets(input string) string {
	return apply(input, secretPatterns)
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
