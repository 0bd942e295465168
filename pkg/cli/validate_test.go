package cli

import (
	"testing"

	"github.com/iqrbr/iqr/pkg/scoring"
	"github.com/stretchr/testify/assert"
)

func sampleProfile() scoring.DonorProfile {
	return scoring.DonorProfile{
		Age:           55,
		Creatinine:    1.2,
		Hypertension:  true,
		IschemiaHours: 10,
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*scoring.DonorProfile)
		wantErr bool
	}{
		{"valid", func(p *scoring.DonorProfile) {}, false},
		{"age lower bound", func(p *scoring.DonorProfile) { p.Age = 0 }, false},
		{"age upper bound", func(p *scoring.DonorProfile) { p.Age = 100 }, false},
		{"age negative", func(p *scoring.DonorProfile) { p.Age = -1 }, true},
		{"age over max", func(p *scoring.DonorProfile) { p.Age = 101 }, true},
		{"creatinine lower bound", func(p *scoring.DonorProfile) { p.Creatinine = 0.1 }, false},
		{"creatinine zero", func(p *scoring.DonorProfile) { p.Creatinine = 0 }, true},
		{"creatinine over max", func(p *scoring.DonorProfile) { p.Creatinine = 10.5 }, true},
		{"ischemia zero", func(p *scoring.DonorProfile) { p.IschemiaHours = 0 }, false},
		{"ischemia at max", func(p *scoring.DonorProfile) { p.IschemiaHours = 72 }, false},
		{"ischemia negative", func(p *scoring.DonorProfile) { p.IschemiaHours = -0.5 }, true},
		{"ischemia over max", func(p *scoring.DonorProfile) { p.IschemiaHours = 73 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sampleProfile()
			tt.mutate(&p)

			err := validateProfile(p)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePercentage(t *testing.T) {
	assert.NoError(t, validatePercentage(0))
	assert.NoError(t, validatePercentage(59.9))
	assert.NoError(t, validatePercentage(100))
	assert.Error(t, validatePercentage(-0.1))
	assert.Error(t, validatePercentage(100.1))
}
