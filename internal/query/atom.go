package query

import "regexp"

// atom is one parsed path segment of a stage expression.
type atom struct {
	rawKey   string
	optional bool
	quoted   bool // quoted bracket keys are looked up verbatim
}

type atomRule struct {
	re     *regexp.Regexp
	quoted bool
}

// Grammar alternatives tried in priority order; first match wins.
// Every alternative accepts a trailing '?' marking the atom optional.
var atomRules = []atomRule{
	{re: regexp.MustCompile(`^\.\["(.*)"\](\?)?$`), quoted: true},
	{re: regexp.MustCompile(`^\.\['(.*)'\](\?)?$`), quoted: true},
	{re: regexp.MustCompile(`^\.\[(.*)\](\?)?$`)},
	{re: regexp.MustCompile(`^\.([A-Za-z_][A-Za-z0-9_]*(?:\[[^\[\]]*\])*(?:\.[A-Za-z_][A-Za-z0-9_]*(?:\[[^\[\]]*\])*)*)(\?)?$`)},
}

// parseAtom matches stage text against the ordered grammar.
// The boolean result reports whether any alternative matched.
func parseAtom(stage string) (atom, bool) {
	for _, rule := range atomRules {
		m := rule.re.FindStringSubmatch(stage)
		if m == nil {
			continue
		}
		return atom{
			rawKey:   m[1],
			optional: m[2] == "?",
			quoted:   rule.quoted,
		}, true
	}
	return atom{}, false
}
