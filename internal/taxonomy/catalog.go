// Package taxonomy organizes study content into the IHK master-craftsman exam
// taxonomy. It classifies free-text subject strings into qualification areas,
// applies the user's chosen specialization, and partitions item collections
// into the nested area structure used by the dashboard.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
)

// Area identifies a top-level qualification area of the exam.
type Area string

// Qualification areas. Sonstige collects everything the classifier
// cannot place.
const (
	AreaBQ       Area = "BQ"
	AreaHQ       Area = "HQ"
	AreaSonstige Area = "Sonstige"
)

// Handlungsbereich is one of the three HQ action domains.
type Handlungsbereich string

// The three action domains, in their fixed exam order.
const (
	Technik      Handlungsbereich = "Technik"
	Organisation Handlungsbereich = "Organisation"
	Fuehrung     Handlungsbereich = "Führung und Personal"
)

// Specialization is the user's chosen HQ-Technik sub-branch (Schwerpunkt).
type Specialization string

// Supported specializations. None disables specialization filtering.
const (
	SpecializationNone            Specialization = "None"
	SpecializationInfrastruktur   Specialization = "Infrastruktursysteme und Betriebstechnik"
	SpecializationAutomatisierung Specialization = "Automatisierungs- und Informationstechnik"
)

// ParseSpecialization maps a stored settings value to a Specialization.
// Unknown or empty values fall back to None.
func ParseSpecialization(s string) Specialization {
	switch Specialization(s) {
	case SpecializationInfrastruktur:
		return SpecializationInfrastruktur
	case SpecializationAutomatisierung:
		return SpecializationAutomatisierung
	default:
		return SpecializationNone
	}
}

// Coordinate is the classification result for a single subject string.
// Handlungsbereich is set only when Area is HQ and a domain matched.
type Coordinate struct {
	Area             Area             `json:"area"`
	Handlungsbereich Handlungsbereich `json:"handlungsbereich,omitempty"`
}

// Domain is one HQ action domain together with its canonical subject names,
// in declaration order.
type Domain struct {
	Name     Handlungsbereich `json:"name"`
	Subjects []string         `json:"subjects"`
}

// Catalog holds the canonical subject names of the exam taxonomy. It is
// immutable after construction and safe to share across goroutines.
// The content is configuration, not logic: an alternate catalog can be
// loaded from a JSON file without touching the classifier.
type Catalog struct {
	BQSubjects []string `json:"bq_subjects"`
	HQDomains  []Domain `json:"hq_domains"`
}

// DefaultCatalog returns the IHK Industriemeister Elektrotechnik taxonomy:
// the cross-discipline basis qualification subjects and the three
// action-specific domains.
func DefaultCatalog() *Catalog {
	return &Catalog{
		BQSubjects: []string{
			"Rechtsbewusstes Handeln",
			"Betriebswirtschaftliches Handeln",
			"Anwendung von Methoden der Information, Kommunikation und Planung",
			"Zusammenarbeit im Betrieb",
			"Naturwissenschaftliche und technische Gesetzmäßigkeiten",
		},
		HQDomains: []Domain{
			{
				Name: Technik,
				Subjects: []string{
					"Infrastruktursysteme und Betriebstechnik",
					"Automatisierungs- und Informationstechnik",
					"Elektrotechnische Anlagen und Systeme",
				},
			},
			{
				Name: Organisation,
				Subjects: []string{
					"Betriebliches Kostenwesen",
					"Planungs-, Steuerungs- und Kommunikationssysteme",
					"Arbeits-, Umwelt- und Gesundheitsschutz",
				},
			},
			{
				Name: Fuehrung,
				Subjects: []string{
					"Personalführung",
					"Personalentwicklung",
					"Qualitätsmanagement",
				},
			},
		},
	}
}

// LoadCatalog reads a catalog from a JSON file. The file carries the same
// shape as Catalog; see DefaultCatalog for the built-in content.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks the catalog for structural problems: empty subject lists
// and domain names outside the three known Handlungsbereiche.
func (c *Catalog) Validate() error {
	if len(c.BQSubjects) == 0 {
		return fmt.Errorf("catalog error: bq_subjects is empty")
	}
	if len(c.HQDomains) == 0 {
		return fmt.Errorf("catalog error: hq_domains is empty")
	}
	for _, d := range c.HQDomains {
		switch d.Name {
		case Technik, Organisation, Fuehrung:
		default:
			return fmt.Errorf("catalog error: unknown handlungsbereich %q", d.Name)
		}
		if len(d.Subjects) == 0 {
			return fmt.Errorf("catalog error: handlungsbereich %q has no subjects", d.Name)
		}
	}
	return nil
}
