package utils

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// GenerateApplicationID builds a time-based application id like
// LOAN-M5K3X2A1. Uniqueness is best effort, acceptable for a dashboard
// with one writer.
func GenerateApplicationID(t time.Time) string {
	return "LOAN-" + strings.ToUpper(formatBase36(t.UnixMilli()))
}

func formatBase36(n int64) string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	if n == 0 {
		return "0"
	}
	var b [16]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = digits[n%36]
		n /= 36
	}
	return string(b[i:])
}

// IsValidPAN reports whether s matches the PAN card format (e.g. ABCDE1234F)
func IsValidPAN(s string) bool {
	return panPattern.MatchString(s)
}

// IsValidPhone reports whether s is exactly 10 digits
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// SameDay reports whether a and b fall on the same calendar day in local time
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same calendar month in local time
func SameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// RoundPercent returns round(100 * part / total), 0 when total is 0
func RoundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// FormatINR renders an amount the way the dashboard shows it, e.g. ₹5,00,000
// using the Indian digit grouping.
func FormatINR(amount decimal.Decimal) string {
	s := amount.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}

	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
