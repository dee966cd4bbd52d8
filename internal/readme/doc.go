// Package readme implements the deterministic README synthesizer used when the
// generative-language API cannot be used.
//
// The synthesizer derives a title, a feature list and a technology list from
// free-text input using simple pattern matching, then assembles them into a
// fixed Markdown layout. It has no dependencies on the rest of the application,
// performs no I/O and keeps no state between calls, so it is safe to call from
// any number of goroutines.
//
// Each derived field is produced by an ordered chain of rules. The first rule
// whose predicate matches the input produces the value, and every chain ends
// with a rule that always matches, which is what makes Synthesize total.
package readme
