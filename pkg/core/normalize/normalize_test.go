package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"effectif-engine/pkg/core/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		present bool
	}{
		{"plain integer", "1234", 1234, true},
		{"plain decimal", "12.5", 12.5, true},
		{"comma decimal", "12,5", 12.5, true},
		{"french thousands with comma decimal", "1 234,56", 1234.56, true},
		{"nbsp thousands", "1 234", 1234, true},
		{"narrow nbsp thousands", "12 345", 12345, true},
		{"dot thousands comma decimal", "1.234,56", 1234.56, true},
		{"comma thousands dot decimal", "1,234.56", 1234.56, true},
		{"repeated comma grouping", "1,234,567", 1234567, true},
		{"repeated dot grouping", "1.234.567", 1234567, true},
		{"apostrophe grouping", "1'234'567", 1234567, true},
		{"explicit zero", "0", 0, true},
		{"blank", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"garbage", "abc", 0, false},
		{"negative clamped", "-42", 0, true},
		{"negative decimal clamped", "-3,5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.Equal(t, tt.present, got.Present)
			if tt.present {
				assert.InDelta(t, tt.want, got.Value, 1e-9)
			}
		})
	}
}

func TestParseAmount_RightmostSeparatorWins(t *testing.T) {
	// Both separators present: position decides, not locale convention
	assert.InDelta(t, 1234.56, ParseAmount("1.234,56").Value, 1e-9)
	assert.InDelta(t, 1234.56, ParseAmount("1,234.56").Value, 1e-9)
}

func TestParseAmount_MultipleDecimalMarkersAbsent(t *testing.T) {
	// Two commas plus a dot: dot is rightmost so commas group, fine
	assert.True(t, ParseAmount("1,234,567.8").Present)

	// Two dots right of a comma cannot be disambiguated
	got := ParseAmount("1,2.3.4")
	assert.False(t, got.Present)
}

func TestAmountOr(t *testing.T) {
	assert.Equal(t, 0.0, Absent.Or(0))
	assert.Equal(t, 7.0, Absent.Or(7))
	assert.Equal(t, 3.0, Amount{Value: 3, Present: true}.Or(7))
}

func TestToDaily(t *testing.T) {
	// 264 annual units over 264 working days is one per day
	assert.InDelta(t, 1.0, ToDaily(264, model.PeriodAnnual, 264), 1e-9)
	assert.InDelta(t, 42.0, ToDaily(42, model.PeriodDaily, 264), 1e-9)
	// Negative quantities are clamped before conversion
	assert.Equal(t, 0.0, ToDaily(-10, model.PeriodAnnual, 264))
}

func TestToAnnual(t *testing.T) {
	assert.InDelta(t, 264.0, ToAnnual(1, model.PeriodDaily, 264), 1e-9)
	assert.InDelta(t, 1000.0, ToAnnual(1000, model.PeriodAnnual, 264), 1e-9)
}

func TestParseAmount_Idempotent(t *testing.T) {
	// Same input always yields the same output: no hidden state
	for i := 0; i < 3; i++ {
		assert.Equal(t, ParseAmount("1 234,5"), ParseAmount("1 234,5"))
	}
}
