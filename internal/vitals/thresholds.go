package vitals

import (
	"vitalcare-server/internal/models"
)

// Bounds holds the normal and critical bands for one vital type.
type Bounds struct {
	NormalLow    float64
	NormalHigh   float64
	CriticalLow  float64
	CriticalHigh float64
	Unit         string
}

// ThresholdTable maps vital types to their configured bounds. Tables are
// plain values constructed explicitly so tests can substitute custom
// bounds without mutating shared state.
type ThresholdTable map[models.VitalType]Bounds

// Bounds looks up the configured bounds for a vital type. The second
// return is false for types with no configured thresholds (bloodPressure
// is a composite and carries none): such readings never alert.
func (t ThresholdTable) Bounds(vitalType models.VitalType) (Bounds, bool) {
	b, ok := t[vitalType]
	if !ok {
		return Bounds{}, false
	}
	// Malformed bands are treated the same as missing ones.
	if b.NormalLow > b.NormalHigh {
		return Bounds{}, false
	}
	return b, true
}

// DefaultTable returns the standard clinical thresholds.
func DefaultTable() ThresholdTable {
	return ThresholdTable{
		models.VitalTemperature: {
			NormalLow: 35.5, NormalHigh: 38.0,
			CriticalLow: 35.0, CriticalHigh: 39.5,
			Unit: "°C",
		},
		models.VitalHeartRate: {
			NormalLow: 60, NormalHigh: 100,
			CriticalLow: 50, CriticalHigh: 120,
			Unit: "bpm",
		},
		models.VitalOxygenSaturation: {
			NormalLow: 95, NormalHigh: 100,
			CriticalLow: 90, CriticalHigh: 100,
			Unit: "%",
		},
		models.VitalRespiratoryRate: {
			NormalLow: 12, NormalHigh: 20,
			CriticalLow: 8, CriticalHigh: 30,
			Unit: "breaths/min",
		},
	}
}
