// Package task runs README generation jobs on a bounded pool of workers.
// The batch command uses it to process many descriptions in one run without
// exceeding the configured concurrency against the Gemini API.
package task
