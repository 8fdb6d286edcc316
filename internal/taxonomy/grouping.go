package taxonomy

// Classifiable is any record carrying free-text subject and/or topic fields:
// a study guide, an exam paper, an extracted practice question. Classification
// never mutates the record; the coordinate is a derived annotation.
type Classifiable interface {
	SubjectText() string
	TopicText() string
}

// HQGroups holds the per-domain buckets of the HQ area, keyed by the fixed
// exam order of the Handlungsbereiche.
type HQGroups[T any] struct {
	Technik      []T `json:"Technik"`
	Organisation []T `json:"Organisation"`
	Fuehrung     []T `json:"Führung und Personal"`
}

// Grouping is the nested partition of a collection of classified items.
// The buckets are disjoint and together contain every item that passed the
// specialization filter exactly once, in original input order.
type Grouping[T Classifiable] struct {
	BQ       []T         `json:"BQ"`
	HQ       HQGroups[T] `json:"HQ"`
	Sonstige []T         `json:"Sonstige"`
}

// Count returns the total number of grouped items across all buckets.
func (g *Grouping[T]) Count() int {
	return len(g.BQ) +
		len(g.HQ.Technik) + len(g.HQ.Organisation) + len(g.HQ.Fuehrung) +
		len(g.Sonstige)
}

// Group partitions items into the taxonomy structure. Each item is classified
// on its subject text, falling back to its topic text when the subject is
// empty, then run through the specialization filter. Items the filter
// excludes appear in no bucket; everything else lands in exactly one.
func Group[T Classifiable](c *Classifier, items []T, spec Specialization) Grouping[T] {
	var g Grouping[T]
	for _, item := range items {
		text := item.SubjectText()
		if text == "" {
			text = item.TopicText()
		}

		coord := c.Classify(text)
		if !ShouldInclude(coord, text, spec) {
			continue
		}

		switch coord.Area {
		case AreaBQ:
			g.BQ = append(g.BQ, item)
		case AreaHQ:
			switch coord.Handlungsbereich {
			case Technik:
				g.HQ.Technik = append(g.HQ.Technik, item)
			case Organisation:
				g.HQ.Organisation = append(g.HQ.Organisation, item)
			case Fuehrung:
				g.HQ.Fuehrung = append(g.HQ.Fuehrung, item)
			}
		default:
			g.Sonstige = append(g.Sonstige, item)
		}
	}
	return g
}

// Visibility carries the expand/collapse defaults the presentation layer
// should start from. It is advisory UI state, not a grouping invariant; the
// caller owns any overrides.
type Visibility struct {
	BQ           bool `json:"BQ"`
	HQ           bool `json:"HQ"`
	Technik      bool `json:"Technik"`
	Organisation bool `json:"Organisation"`
	Fuehrung     bool `json:"Führung und Personal"`
	Sonstige     bool `json:"Sonstige"`
}

// DefaultVisibility expands every qualification bucket except Sonstige.
func DefaultVisibility() Visibility {
	return Visibility{
		BQ:           true,
		HQ:           true,
		Technik:      true,
		Organisation: true,
		Fuehrung:     true,
		Sonstige:     false,
	}
}
