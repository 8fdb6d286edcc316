package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultClassifier() *Classifier {
	return NewClassifier(DefaultCatalog(), nil)
}

func TestClassify_BQSubjectPrefix(t *testing.T) {
	c := newDefaultClassifier()

	tests := []struct {
		name  string
		input string
	}{
		{"full subject name", "Rechtsbewusstes Handeln"},
		{"compound variant", "Naturwissenschaftliche Grundlagen"},
		{"abbreviated subject", "Zusammenarbeit"},
		{"case insensitive", "BETRIEBSWIRTSCHAFTLICHES HANDELN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord := c.Classify(tt.input)
			assert.Equal(t, AreaBQ, coord.Area)
			assert.Empty(t, coord.Handlungsbereich)
		})
	}
}

func TestClassify_HQSubjectPrefix(t *testing.T) {
	c := newDefaultClassifier()

	tests := []struct {
		input  string
		domain Handlungsbereich
	}{
		{"Automatisierungstechnik Grundlagen", Technik},
		{"Infrastruktursysteme", Technik},
		{"Betriebliches Kostenwesen", Organisation},
		{"Arbeits-, Umwelt- und Gesundheitsschutz", Organisation},
		{"Personalführung im Betrieb", Fuehrung},
		{"Qualitätsmanagement", Fuehrung},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			coord := c.Classify(tt.input)
			assert.Equal(t, AreaHQ, coord.Area)
			assert.Equal(t, tt.domain, coord.Handlungsbereich)
		})
	}
}

func TestClassify_KeywordFallback(t *testing.T) {
	c := newDefaultClassifier()

	tests := []struct {
		input string
		want  Coordinate
	}{
		{"NTG Übungsblatt", Coordinate{Area: AreaBQ}},
		{"Physik Formelsammlung", Coordinate{Area: AreaBQ}},
		{"Mathematik Test 3", Coordinate{Area: AreaBQ}},
		{"Elektroberuf Basics", Coordinate{Area: AreaHQ, Handlungsbereich: Technik}},
		{"Umweltschutz Kapitel 2", Coordinate{Area: AreaHQ, Handlungsbereich: Organisation}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.input))
		})
	}
}

// Keyword groups are checked in a fixed precedence: BQ keywords beat Technik
// keywords, and Führung keywords beat Organisation keywords.
func TestClassify_KeywordPrecedence(t *testing.T) {
	c := newDefaultClassifier()

	// "recht" (BQ) and "technik" (HQ-Technik) both occur; BQ wins.
	coord := c.Classify("Recht der Datentechnik")
	assert.Equal(t, AreaBQ, coord.Area)

	// "personal" (Führung) and "kosten" (Organisation) both occur; Führung wins.
	coord = c.Classify("Personalkosten im Überblick")
	assert.Equal(t, AreaHQ, coord.Area)
	assert.Equal(t, Fuehrung, coord.Handlungsbereich)
}

func TestClassify_SonstigeFallback(t *testing.T) {
	c := newDefaultClassifier()

	tests := []string{
		"Quantencomputing für Anfänger",
		"Lorem ipsum dolor",
		"12345",
		"???",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			coord := c.Classify(input)
			assert.Equal(t, AreaSonstige, coord.Area)
			assert.Empty(t, coord.Handlungsbereich)
		})
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	c := newDefaultClassifier()

	assert.Equal(t, Coordinate{Area: AreaSonstige}, c.Classify(""))
	assert.Equal(t, Coordinate{Area: AreaSonstige}, c.Classify("   \t "))
}

// The invariant from the coordinate contract: a Handlungsbereich is present
// if and only if the area is HQ.
func TestClassify_CoordinateInvariant(t *testing.T) {
	c := newDefaultClassifier()

	inputs := []string{
		"", "Technik", "Recht", "Personal", "Planung", "Automatisierung",
		"Naturwissenschaft", "Unbekanntes Thema", "ntg", "ä", "Führung und Personal",
	}
	for _, input := range inputs {
		coord := c.Classify(input)
		if coord.Area == AreaHQ {
			assert.NotEmpty(t, coord.Handlungsbereich, "input %q", input)
		} else {
			assert.Empty(t, coord.Handlungsbereich, "input %q", input)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c1 := newDefaultClassifier()
	c2 := newDefaultClassifier()

	inputs := []string{"Automatisierungstechnik", "Recht", "", "Quantencomputing"}
	for _, input := range inputs {
		first := c1.Classify(input)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, c1.Classify(input), "input %q", input)
		}
		// A fresh classifier over the same catalog agrees.
		assert.Equal(t, first, c2.Classify(input), "input %q", input)
	}
}

func TestExplain_ReportsMatchingRule(t *testing.T) {
	c := newDefaultClassifier()

	coord, rule := c.Explain("Qualitätsmanagement")
	assert.Equal(t, AreaHQ, coord.Area)
	assert.Equal(t, "hq:qualitätsmanagement", rule)

	coord, rule = c.Explain("NTG Aufgaben")
	assert.Equal(t, AreaBQ, coord.Area)
	assert.Equal(t, "keyword:bq", rule)

	coord, rule = c.Explain("Quantencomputing")
	assert.Equal(t, AreaSonstige, coord.Area)
	assert.Empty(t, rule)
}

func TestNewClassifier_PrefixLenConfigurable(t *testing.T) {
	cat := &Catalog{
		BQSubjects: []string{"Mathematische Grundlagen"},
		HQDomains: []Domain{
			{Name: Technik, Subjects: []string{"Steuerungstechnik"}},
		},
	}

	// With a short prefix the truncated forms diverge earlier, so a variant
	// that shares only the first few characters still matches.
	short := NewClassifier(cat, &ClassifierConfig{PrefixLen: 6})
	coord := short.Classify("Steuer und Abgaben")
	assert.Equal(t, AreaHQ, coord.Area)

	// The default 10-rune prefix "steuerungs" does not occur in the input,
	// and no keyword applies.
	long := NewClassifier(cat, nil)
	coord = long.Classify("Steuer und Abgaben")
	assert.Equal(t, AreaSonstige, coord.Area)
}

func TestNewClassifier_NilCatalogUsesDefault(t *testing.T) {
	c := NewClassifier(nil, nil)
	require.NotEmpty(t, c.Rules())
	assert.Equal(t, AreaBQ, c.Classify("Rechtsbewusstes Handeln").Area)
}

func TestClassifier_RuleOrder(t *testing.T) {
	c := newDefaultClassifier()
	rules := c.Rules()
	require.NotEmpty(t, rules)

	// All BQ subject rules precede all HQ subject rules, which precede the
	// keyword fallbacks.
	cat := DefaultCatalog()
	bqCount := len(cat.BQSubjects)
	hqCount := 0
	for _, d := range cat.HQDomains {
		hqCount += len(d.Subjects)
	}

	require.Len(t, rules, bqCount+hqCount+4)
	for i, r := range rules {
		switch {
		case i < bqCount:
			assert.Equal(t, AreaBQ, r.Coord.Area, "rule %d %s", i, r.Name)
		case i < bqCount+hqCount:
			assert.Equal(t, AreaHQ, r.Coord.Area, "rule %d %s", i, r.Name)
		}
	}
	assert.Equal(t, "keyword:bq", rules[bqCount+hqCount].Name)
	assert.Equal(t, "keyword:hq-organisation", rules[len(rules)-1].Name)
}
