// Package generation defines the boundary between the application and external
// AI/LLM services used for README content generation. The Generator interface
// lets the service layer call Gemini, or a test double, without knowing how the
// request is transported, and the error values here give callers a stable way
// to classify upstream failures.
package generation
