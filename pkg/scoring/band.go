package scoring

// Band is the risk classification derived from a normalized percentage.
type Band string

const (
	BandLow      Band = "LOW"
	BandModerate Band = "MODERATE"
	BandHigh     Band = "HIGH"

	moderateThreshold = 30
	highThreshold     = 60
)

// Classify maps a percentage to its risk band: below 30 is LOW, 30 to
// under 60 is MODERATE, 60 and above is HIGH.
func Classify(pct float64) Band {
	switch {
	case pct < moderateThreshold:
		return BandLow
	case pct < highThreshold:
		return BandModerate
	default:
		return BandHigh
	}
}

// Advisory returns the clinical guidance text associated with the band.
func (b Band) Advisory() string {
	switch b {
	case BandLow:
		return "Favorable profile, associated with higher expected graft survival."
	case BandModerate:
		return "Risk factors present that may impact graft survival. Evaluate with caution."
	case BandHigh:
		return "Multiple significant risk factors. Associated with lower expected graft survival."
	default:
		return ""
	}
}
