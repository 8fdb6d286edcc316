package taxonomy

import "strings"

// DefaultPrefixLen is the truncation length for the symmetric prefix test.
// The value is a heuristic tuned for German compound subject names; it is
// configurable via ClassifierConfig.
const DefaultPrefixLen = 10

// ClassifierConfig controls classifier construction.
type ClassifierConfig struct {
	// PrefixLen overrides DefaultPrefixLen when positive.
	PrefixLen int
}

// Rule is a single classification rule: a named predicate over the
// canonicalized input together with the coordinate it produces. Rules are
// evaluated top to bottom; the first match wins.
type Rule struct {
	Name  string
	Coord Coordinate

	match func(s string) bool
}

// Classifier maps free-text subject strings onto taxonomy coordinates.
// Classification is total, pure, and deterministic: every input resolves to
// exactly one coordinate, with Sonstige as the universal fallback. A
// classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier from the catalog. A nil config uses
// defaults.
//
// The rule order encodes the classification precedence:
//  1. BQ subject prefix rules (highest priority, short-circuits HQ).
//  2. HQ subject prefix rules, domains and subjects in declaration order.
//  3. Keyword fallbacks: BQ, then HQ-Technik, HQ-Führung, HQ-Organisation.
//
// Anything that falls through all rules classifies as Sonstige.
func NewClassifier(cat *Catalog, cfg *ClassifierConfig) *Classifier {
	if cat == nil {
		cat = DefaultCatalog()
	}
	prefixLen := DefaultPrefixLen
	if cfg != nil && cfg.PrefixLen > 0 {
		prefixLen = cfg.PrefixLen
	}

	var rules []Rule

	for _, subject := range cat.BQSubjects {
		rules = append(rules, subjectRule("bq", subject, prefixLen, Coordinate{Area: AreaBQ}))
	}

	for _, domain := range cat.HQDomains {
		coord := Coordinate{Area: AreaHQ, Handlungsbereich: domain.Name}
		for _, subject := range domain.Subjects {
			rules = append(rules, subjectRule("hq", subject, prefixLen, coord))
		}
	}

	rules = append(rules,
		keywordRule("keyword:bq",
			[]string{"ntg", "naturwissenschaft", "physik", "mathematik", "recht", "bwl", "betriebswirt"},
			Coordinate{Area: AreaBQ}),
		keywordRule("keyword:hq-technik",
			[]string{"technik", "automatisierung", "infrastruktur", "elektro"},
			Coordinate{Area: AreaHQ, Handlungsbereich: Technik}),
		keywordRule("keyword:hq-fuehrung",
			[]string{"personal", "führung", "qualität"},
			Coordinate{Area: AreaHQ, Handlungsbereich: Fuehrung}),
		keywordRule("keyword:hq-organisation",
			[]string{"kosten", "planung", "organisation", "umwelt"},
			Coordinate{Area: AreaHQ, Handlungsbereich: Organisation}),
	)

	return &Classifier{rules: rules}
}

// Classify maps a subject or topic string to its taxonomy coordinate.
// It never fails; empty and unmatched inputs classify as Sonstige.
func (c *Classifier) Classify(text string) Coordinate {
	coord, _ := c.Explain(text)
	return coord
}

// Explain classifies like Classify and additionally reports the name of the
// matching rule, or the empty string for the Sonstige fallback.
func (c *Classifier) Explain(text string) (Coordinate, string) {
	s := canonicalize(text)
	if s == "" {
		return Coordinate{Area: AreaSonstige}, ""
	}
	for _, r := range c.rules {
		if r.match(s) {
			return r.Coord, r.Name
		}
	}
	return Coordinate{Area: AreaSonstige}, ""
}

// Rules exposes the ordered rule list for inspection; the slice is a copy.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

func canonicalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// subjectRule builds the symmetric truncated-prefix containment test against
// one canonical subject name: the first prefixLen runes of either side must
// appear somewhere in the other side's full text. The test deliberately
// tolerates compound-word variants and abbreviated subject names coming out
// of free-text extraction.
func subjectRule(kind, subject string, prefixLen int, coord Coordinate) Rule {
	canonical := canonicalize(subject)
	subjectPrefix := truncateRunes(canonical, prefixLen)
	return Rule{
		Name:  kind + ":" + canonical,
		Coord: coord,
		match: func(s string) bool {
			inputPrefix := truncateRunes(s, prefixLen)
			return strings.Contains(canonical, inputPrefix) || strings.Contains(s, subjectPrefix)
		},
	}
}

// keywordRule matches when any keyword occurs anywhere in the input.
func keywordRule(name string, keywords []string, coord Coordinate) Rule {
	return Rule{
		Name:  name,
		Coord: coord,
		match: func(s string) bool {
			for _, kw := range keywords {
				if strings.Contains(s, kw) {
					return true
				}
			}
			return false
		},
	}
}

// truncateRunes takes the first n runes, not bytes; subject names contain
// umlauts.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
