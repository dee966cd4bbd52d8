// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for writing README documents.
//
// This package is an infrastructure adapter, connecting the application's
// generation port to Google's generative-language service through the
// google.golang.org/genai client without exposing the details of the external
// service to the rest of the application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Sends the rendered instruction prompt and the user's input as two user turns
//   - Tries a primary endpoint (API version and model) and, when that call
//     fails, a single fallback endpoint
//
// 2. Prompt Management:
//   - Uses an embedded text/template by default
//   - Loads a replacement template from disk when one is configured
//
// 3. Response Processing:
//   - Concatenates the text parts of the first candidate
//   - Reports missing candidates, blank text and safety blocks as distinct errors
//
// 4. Error Handling:
//   - Converts genai.APIError values into generation.UpstreamError, classified
//     by the upstream message
//
// There is no retry or backoff beyond the single fallback endpoint.
package gemini
