package cli

import (
	"fmt"

	"github.com/iqrbr/iqr/pkg/scoring"
)

// Input bounds enforced before the scorer is invoked. The scorer itself is
// a total function with no validation, so anything outside these ranges is
// rejected here.
const (
	ageMin = 0
	ageMax = 100

	creatinineMin = 0.1
	creatinineMax = 10.0

	ischemiaMin = 0.0
	ischemiaMax = 72.0

	percentMin = 0.0
	percentMax = 100.0
)

func validateProfile(p scoring.DonorProfile) error {
	if p.Age < ageMin || p.Age > ageMax {
		return fmt.Errorf("age must be between %d and %d, got %d", ageMin, ageMax, p.Age)
	}
	if p.Creatinine < creatinineMin || p.Creatinine > creatinineMax {
		return fmt.Errorf("creatinine must be between %.1f and %.1f mg/dL, got %.2f",
			creatinineMin, creatinineMax, p.Creatinine)
	}
	if p.IschemiaHours < ischemiaMin || p.IschemiaHours > ischemiaMax {
		return fmt.Errorf("ischemia time must be between %.0f and %.0f hours, got %.1f",
			ischemiaMin, ischemiaMax, p.IschemiaHours)
	}
	return nil
}

func validatePercentage(pct float64) error {
	if pct < percentMin || pct > percentMax {
		return fmt.Errorf("percentage must be between %.0f and %.0f, got %.2f",
			percentMin, percentMax, pct)
	}
	return nil
}
