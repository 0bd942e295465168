package cli

import (
	"fmt"
	"math"

	"github.com/iqrbr/iqr/pkg/scoring"
	"github.com/urfave/cli/v2"
)

var (
	ageFlag = &cli.IntFlag{
		Name:     "age",
		Usage:    "Donor age in years [0-100]",
		Required: true,
	}

	creatinineFlag = &cli.Float64Flag{
		Name:     "creatinine",
		Usage:    "Serum creatinine at retrieval in mg/dL [0.1-10.0]",
		Required: true,
	}

	ischemiaFlag = &cli.Float64Flag{
		Name:     "ischemia",
		Usage:    "Cold ischemia time in hours [0-72]",
		Required: true,
	}

	hypertensionFlag = &cli.BoolFlag{
		Name:  "hypertension",
		Usage: "History of hypertension",
	}

	diabetesFlag = &cli.BoolFlag{
		Name:  "diabetes",
		Usage: "History of diabetes",
	}

	cardiacArrestFlag = &cli.BoolFlag{
		Name:  "cardiac-arrest",
		Usage: "Cardiac arrest prior to donation",
	}

	hcvFlag = &cli.BoolFlag{
		Name:  "hcv",
		Usage: "Positive anti-HCV serology",
	}

	percentageFlag = &cli.Float64Flag{
		Name:     "percentage",
		Usage:    "Risk percentage to classify [0-100]",
		Required: true,
	}

	scoreCmd = &cli.Command{
		Name:    "score",
		Aliases: []string{"s"},
		Usage:   "Score a donor profile",
		UsageText: `iqr score --age 55 --creatinine 1.2 --ischemia 10 --hypertension
   iqr score --age 65 --creatinine 3.0 --ischemia 30 --hypertension --diabetes --cardiac-arrest --hcv`,
		HideHelpCommand: true,
		Action:          cmdScore,
		Flags: []cli.Flag{
			ageFlag,
			creatinineFlag,
			ischemiaFlag,
			hypertensionFlag,
			diabetesFlag,
			cardiacArrestFlag,
			hcvFlag,
			formatFlag,
		},
	}

	classifyCmd = &cli.Command{
		Name:            "classify",
		Aliases:         []string{"c"},
		Usage:           "Classify a risk percentage into its band",
		UsageText:       `iqr classify --percentage 42`,
		HideHelpCommand: true,
		Action:          cmdClassify,
		Flags: []cli.Flag{
			percentageFlag,
			formatFlag,
		},
	}
)

// assessmentView is the serializable result of one evaluation. Percentage
// carries the exact value from the scorer; Rounded is the display value.
type assessmentView struct {
	Profile       scoring.DonorProfile   `json:"profile" yaml:"profile"`
	Percentage    float64                `json:"percentage" yaml:"percentage"`
	Rounded       int                    `json:"rounded" yaml:"rounded"`
	Band          scoring.Band           `json:"band" yaml:"band"`
	Advisory      string                 `json:"advisory" yaml:"advisory"`
	MaxScore      int                    `json:"max_score" yaml:"maxScore"`
	RawSum        int                    `json:"raw_sum" yaml:"rawSum"`
	Contributions []scoring.Contribution `json:"contributions,omitempty" yaml:"contributions,omitempty"`
}

type bandView struct {
	Percentage float64      `json:"percentage" yaml:"percentage"`
	Band       scoring.Band `json:"band" yaml:"band"`
	Advisory   string       `json:"advisory" yaml:"advisory"`
}

func makeAssessmentView(p scoring.DonorProfile) *assessmentView {
	a := scoring.Score(p)
	band := scoring.Classify(a.Percentage)

	return &assessmentView{
		Profile:       p,
		Percentage:    a.Percentage,
		Rounded:       int(math.Round(a.Percentage)),
		Band:          band,
		Advisory:      band.Advisory(),
		MaxScore:      scoring.MaxScore(),
		RawSum:        a.RawSum(),
		Contributions: a.Ranked(),
	}
}

func cmdScore(c *cli.Context) error {
	applyFlags(c)

	p := scoring.DonorProfile{
		Age:           c.Int(ageFlag.Name),
		Creatinine:    c.Float64(creatinineFlag.Name),
		Hypertension:  c.Bool(hypertensionFlag.Name),
		Diabetes:      c.Bool(diabetesFlag.Name),
		IschemiaHours: c.Float64(ischemiaFlag.Name),
		CardiacArrest: c.Bool(cardiacArrestFlag.Name),
		HCVPositive:   c.Bool(hcvFlag.Name),
	}

	if err := validateProfile(p); err != nil {
		return fmt.Errorf("invalid donor profile: %w", err)
	}

	return encode(makeAssessmentView(p))
}

func cmdClassify(c *cli.Context) error {
	applyFlags(c)

	pct := c.Float64(percentageFlag.Name)
	if err := validatePercentage(pct); err != nil {
		return fmt.Errorf("invalid percentage: %w", err)
	}

	band := scoring.Classify(pct)
	return encode(&bandView{
		Percentage: pct,
		Band:       band,
		Advisory:   band.Advisory(),
	})
}
