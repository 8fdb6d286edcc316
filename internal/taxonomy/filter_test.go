package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldInclude_VetoSymmetry(t *testing.T) {
	coord := Coordinate{Area: AreaHQ, Handlungsbereich: Technik}
	subject := "Automatisierungs- und Informationstechnik"

	assert.False(t, ShouldInclude(coord, subject, SpecializationInfrastruktur))
	assert.True(t, ShouldInclude(coord, subject, SpecializationAutomatisierung))
	assert.True(t, ShouldInclude(coord, subject, SpecializationNone))
}

func TestShouldInclude_InfrastrukturVetoedUnderAutomatisierung(t *testing.T) {
	coord := Coordinate{Area: AreaHQ, Handlungsbereich: Technik}
	subject := "Infrastruktursysteme und Betriebstechnik"

	assert.False(t, ShouldInclude(coord, subject, SpecializationAutomatisierung))
	assert.True(t, ShouldInclude(coord, subject, SpecializationInfrastruktur))
	assert.True(t, ShouldInclude(coord, subject, SpecializationNone))
}

func TestShouldInclude_CaseInsensitive(t *testing.T) {
	coord := Coordinate{Area: AreaHQ, Handlungsbereich: Technik}

	assert.False(t, ShouldInclude(coord, "AUTOMATISIERUNGSTECHNIK", SpecializationInfrastruktur))
}

// The filter narrows HQ-Technik only; no other coordinate is ever touched,
// regardless of what the subject text contains.
func TestShouldInclude_OnlyAppliesToHQTechnik(t *testing.T) {
	coords := []Coordinate{
		{Area: AreaBQ},
		{Area: AreaHQ, Handlungsbereich: Organisation},
		{Area: AreaHQ, Handlungsbereich: Fuehrung},
		{Area: AreaSonstige},
	}
	specs := []Specialization{
		SpecializationNone,
		SpecializationInfrastruktur,
		SpecializationAutomatisierung,
	}

	for _, coord := range coords {
		for _, spec := range specs {
			assert.True(t, ShouldInclude(coord, "automatisierung infrastruktur", spec),
				"coord %+v spec %q", coord, spec)
		}
	}
}

func TestShouldInclude_NeutralTechnikSubjectAlwaysIncluded(t *testing.T) {
	coord := Coordinate{Area: AreaHQ, Handlungsbereich: Technik}

	assert.True(t, ShouldInclude(coord, "Elektrotechnische Anlagen", SpecializationInfrastruktur))
	assert.True(t, ShouldInclude(coord, "Elektrotechnische Anlagen", SpecializationAutomatisierung))
}
