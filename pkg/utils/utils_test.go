package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidPAN(t *testing.T) {
	tests := []struct {
		name  string
		pan   string
		valid bool
	}{
		{"standard pan", "ABCDE1234F", true},
		{"lowercase rejected", "abcde1234f", false},
		{"too short", "abc123", false},
		{"digits in wrong place", "AB1DE2345F", false},
		{"trailing digit", "ABCDE12345", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPAN(tt.pan))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"ten digits", "9876543210", true},
		{"nine digits", "987654321", false},
		{"eleven digits", "98765432100", false},
		{"letters", "98765abcde", false},
		{"with country code", "+919876543210", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhone(tt.phone))
		})
	}
}

func TestGenerateApplicationID(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := GenerateApplicationID(ts)

	assert.True(t, strings.HasPrefix(id, "LOAN-"))
	assert.Equal(t, strings.ToUpper(id), id)
	// Same instant yields the same id; later instants differ
	assert.Equal(t, id, GenerateApplicationID(ts))
	assert.NotEqual(t, id, GenerateApplicationID(ts.Add(time.Second)))
}

func TestSameDayAndMonth(t *testing.T) {
	base := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

	assert.True(t, SameDay(base, base.Add(5*time.Hour)))
	assert.False(t, SameDay(base, base.AddDate(0, 0, 1)))
	// Same day number in a different month is a different day
	assert.False(t, SameDay(base, base.AddDate(0, 1, 0)))

	assert.True(t, SameMonth(base, base.AddDate(0, 0, 10)))
	assert.False(t, SameMonth(base, base.AddDate(0, 1, 0)))
	// Same month in a different year does not match
	assert.False(t, SameMonth(base, base.AddDate(1, 0, 0)))
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		name     string
		part     int
		total    int
		expected int
	}{
		{"zero total", 0, 0, 0},
		{"half", 1, 2, 50},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"all", 5, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundPercent(tt.part, tt.total))
		})
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"lakh grouping", decimal.NewFromInt(500000), "₹5,00,000"},
		{"thousand", decimal.NewFromInt(1000), "₹1,000"},
		{"below grouping", decimal.NewFromInt(999), "₹999"},
		{"crore", decimal.NewFromInt(12345678), "₹1,23,45,678"},
		{"negative", decimal.NewFromInt(-500000), "-₹5,00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatINR(tt.amount))
		})
	}
}
