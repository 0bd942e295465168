package scoring

import (
	"math"
	"sort"
)

// Factor identifies a clinical risk factor in an assessment breakdown.
// The values are the labels used by the IQR-BR protocol.
type Factor string

const (
	FactorAge           Factor = "Idade"
	FactorCreatinine    Factor = "Creatinina"
	FactorHypertension  Factor = "Hipertensão"
	FactorDiabetes      Factor = "Diabetes"
	FactorIschemia      Factor = "Tempo de Isquemia"
	FactorCardiacArrest Factor = "PCR"
	FactorHepatitisC    Factor = "Hepatite C"
)

// DonorProfile holds the seven clinical inputs for a single deceased-donor
// evaluation. Callers are responsible for rejecting out-of-domain values
// before scoring; behavior on out-of-domain input (e.g. negative age) is
// undefined.
type DonorProfile struct {
	Age           int     `json:"age" yaml:"age"`
	Creatinine    float64 `json:"creatinine" yaml:"creatinine"`
	Hypertension  bool    `json:"hypertension" yaml:"hypertension"`
	Diabetes      bool    `json:"diabetes" yaml:"diabetes"`
	IschemiaHours float64 `json:"ischemia_hours" yaml:"ischemiaHours"`
	CardiacArrest bool    `json:"cardiac_arrest" yaml:"cardiacArrest"`
	HCVPositive   bool    `json:"hcv_positive" yaml:"hcvPositive"`
}

// Assessment is the result of scoring a donor profile. Percentage is the
// exact normalized value in [0,100]; display rounding is the caller's job.
// Contributions holds only the factors that scored points, never a zero
// entry: a false flag or a below-threshold measurement is simply absent.
type Assessment struct {
	Percentage    float64        `json:"percentage" yaml:"percentage"`
	Contributions map[Factor]int `json:"contributions" yaml:"contributions"`
}

// Contribution is a single factor and the points it scored.
type Contribution struct {
	Factor Factor `json:"factor" yaml:"factor"`
	Points int    `json:"points" yaml:"points"`
}

// tier awards points when a measurement falls in [min,max], both ends
// inclusive. Tiers are evaluated in order, first match wins, so an
// open-ended tier lists the previous tier's upper bound as its min and
// still behaves as a strict "greater than".
type tier struct {
	min    float64
	max    float64
	points int
}

type numericFactor struct {
	label Factor
	value func(p DonorProfile) float64
	tiers []tier
}

type booleanFactor struct {
	label  Factor
	set    func(p DonorProfile) bool
	points int
}

// The weight table. Point values are literature-derived (hazard ratios and
// relative risks); see pkg/refs for the sources. Both the scoring loop and
// the normalization maximum derive from this single table.
var (
	numericFactors = []numericFactor{
		{
			label: FactorAge,
			value: func(p DonorProfile) float64 { return float64(p.Age) },
			tiers: []tier{
				{min: 40, max: 49, points: 15},
				{min: 50, max: 59, points: 25},
				{min: 60, max: math.Inf(1), points: 40},
			},
		},
		{
			label: FactorCreatinine,
			value: func(p DonorProfile) float64 { return p.Creatinine },
			tiers: []tier{
				{min: 1.5, max: 2.5, points: 20},
				{min: 2.5, max: math.Inf(1), points: 35},
			},
		},
		{
			label: FactorIschemia,
			value: func(p DonorProfile) float64 { return p.IschemiaHours },
			tiers: []tier{
				{min: 12, max: 20, points: 15},
				{min: 21, max: 28, points: 25},
				{min: 28, max: math.Inf(1), points: 35},
			},
		},
	}

	booleanFactors = []booleanFactor{
		{label: FactorHypertension, set: func(p DonorProfile) bool { return p.Hypertension }, points: 25},
		{label: FactorDiabetes, set: func(p DonorProfile) bool { return p.Diabetes }, points: 30},
		{label: FactorCardiacArrest, set: func(p DonorProfile) bool { return p.CardiacArrest }, points: 15},
		{label: FactorHepatitisC, set: func(p DonorProfile) bool { return p.HCVPositive }, points: 10},
	}

	maxScore = computeMaxScore()
)

// computeMaxScore sums the highest tier of every factor (190 with the
// current table). Derived from the table so the two cannot drift apart.
func computeMaxScore() int {
	total := 0
	for _, f := range numericFactors {
		top := 0
		for _, t := range f.tiers {
			if t.points > top {
				top = t.points
			}
		}
		total += top
	}
	for _, f := range booleanFactors {
		total += f.points
	}
	return total
}

// MaxScore returns the theoretical maximum raw score obtainable by summing
// the single highest tier of every factor.
func MaxScore() int {
	return maxScore
}

// Score evaluates the seven factors independently, sums the awarded points,
// and normalizes by the table maximum. It is a total function over the
// declared input domain: no validation, no error path, no rounding.
func Score(p DonorProfile) Assessment {
	contributions := make(map[Factor]int)
	raw := 0

	for _, f := range numericFactors {
		v := f.value(p)
		for _, t := range f.tiers {
			if v >= t.min && v <= t.max {
				contributions[f.label] = t.points
				raw += t.points
				break
			}
		}
	}

	for _, f := range booleanFactors {
		if f.set(p) {
			contributions[f.label] = f.points
			raw += f.points
		}
	}

	return Assessment{
		Percentage:    float64(raw) / float64(maxScore) * 100,
		Contributions: contributions,
	}
}

// Ranked returns the contributions ordered by points, highest first.
// Ties break on label so the order is deterministic.
func (a Assessment) Ranked() []Contribution {
	list := make([]Contribution, 0, len(a.Contributions))
	for f, pts := range a.Contributions {
		list = append(list, Contribution{Factor: f, Points: pts})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Points != list[j].Points {
			return list[i].Points > list[j].Points
		}
		return list[i].Factor < list[j].Factor
	})
	return list
}

// RawSum returns the un-normalized point total.
func (a Assessment) RawSum() int {
	sum := 0
	for _, pts := range a.Contributions {
		sum += pts
	}
	return sum
}
