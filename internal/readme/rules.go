package readme

// rule is a single step in a field's derivation chain.
type rule struct {
	name    string
	matches func(input string) bool
	apply   func(input string) string
}

// chain is an ordered list of rules. The last rule must always match.
type chain []rule

// always is the predicate used by the terminal rule of every chain.
func always(string) bool { return true }

// constant returns a transform that ignores its input.
func constant(value string) func(string) string {
	return func(string) string { return value }
}

// eval returns the output of the first matching rule along with its name.
func (c chain) eval(input string) (string, string) {
	for _, r := range c {
		if r.matches(input) {
			return r.apply(input), r.name
		}
	}
	// Unreachable while every chain ends with an always rule.
	return "", ""
}
