package taxonomy

import "strings"

// ShouldInclude decides whether a classified item is relevant under the given
// specialization. The filter only narrows the HQ-Technik bucket: under the
// Infrastruktur specialization, subjects mentioning Automatisierung are
// excluded, and vice versa. Every other coordinate passes through, and
// SpecializationNone includes everything. The filter never reclassifies an
// item into or out of a bucket.
func ShouldInclude(coord Coordinate, subjectText string, spec Specialization) bool {
	if coord.Area != AreaHQ || coord.Handlungsbereich != Technik {
		return true
	}

	text := strings.ToLower(subjectText)
	switch spec {
	case SpecializationInfrastruktur:
		return !strings.Contains(text, "automatisierung")
	case SpecializationAutomatisierung:
		return !strings.Contains(text, "infrastruktur")
	default:
		return true
	}
}
