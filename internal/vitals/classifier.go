package vitals

import (
	"math"

	"vitalcare-server/internal/models"
)

// Classification is the outcome of evaluating one reading against the
// thresholds. Severity is only meaningful when Abnormal is true.
type Classification struct {
	Abnormal bool
	Severity models.Severity
}

// Classifier evaluates readings against an injected threshold table.
type Classifier struct {
	Table ThresholdTable
}

// NewClassifier creates a Classifier over the given table.
func NewClassifier(table ThresholdTable) *Classifier {
	return &Classifier{Table: table}
}

// Classify decides whether a reading is abnormal and how severe it is.
// Boundary values are normal: value == normalHigh does not alert. Types
// without configured bounds never alert.
func (c *Classifier) Classify(vitalType models.VitalType, value float64) Classification {
	bounds, ok := c.Table.Bounds(vitalType)
	if !ok {
		return Classification{}
	}

	if value >= bounds.NormalLow && value <= bounds.NormalHigh {
		return Classification{}
	}

	if value <= bounds.CriticalLow || value >= bounds.CriticalHigh {
		return Classification{Abnormal: true, Severity: models.SeverityCritical}
	}

	return Classification{Abnormal: true, Severity: deviationSeverity(bounds, value)}
}

// deviationSeverity grades an out-of-band but non-critical value by its
// relative distance from the normal band's midpoint. A band with midpoint
// zero falls back to absolute deviation against the band half-width so the
// same tiers apply without dividing by zero.
func deviationSeverity(bounds Bounds, value float64) models.Severity {
	midpoint := (bounds.NormalLow + bounds.NormalHigh) / 2

	var deviation float64
	if midpoint == 0 {
		halfWidth := (bounds.NormalHigh - bounds.NormalLow) / 2
		if halfWidth == 0 {
			return models.SeverityHigh
		}
		deviation = math.Abs(value) / halfWidth
	} else {
		deviation = math.Abs(value-midpoint) / math.Abs(midpoint)
	}

	switch {
	case deviation > 0.15:
		return models.SeverityHigh
	case deviation > 0.05:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}
