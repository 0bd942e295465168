package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		pct  float64
		want Band
	}{
		{0, BandLow},
		{15, BandLow},
		{29.99, BandLow},
		{30, BandModerate},
		{45, BandModerate},
		{59.99, BandModerate},
		{60, BandHigh},
		{80, BandHigh},
		{100, BandHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.pct), "pct=%.2f", tt.pct)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	rank := map[Band]int{BandLow: 0, BandModerate: 1, BandHigh: 2}

	prev := BandLow
	for pct := 0.0; pct <= 100; pct += 0.5 {
		b := Classify(pct)
		assert.GreaterOrEqual(t, rank[b], rank[prev], "pct=%.1f", pct)
		prev = b
	}
}

func TestBand_Advisory(t *testing.T) {
	assert.Contains(t, Classify(10).Advisory(), "Favorable")
	assert.Contains(t, Classify(45).Advisory(), "caution")
	assert.Contains(t, Classify(90).Advisory(), "lower expected graft survival")
	assert.Empty(t, Band("bogus").Advisory())
}
