package validator

import (
	"fmt"
	"time"

	"github.com/user-validation/go-api-server/internal/shared/logger"
)

const (
	nationalIDLength = 14

	minGovernorate = 1
	maxGovernorate = 88
)

// Century indicators carried by the first digit of a national ID.
const (
	Century1900 = 2
	Century2000 = 3
)

// NationalID is the decomposition of a 14 digit Egyptian national ID.
//
// Layout: C YY MM DD GG SSSS K
//
//	C    century indicator (2 = 1900-1999, 3 = 2000-2099)
//	YY   year within the century
//	MM   birth month
//	DD   birth day
//	GG   governorate code
//	SSSS sequence number
//	K    check digit
type NationalID struct {
	Century     int
	BirthDate   time.Time
	Governorate int
	Sequence    string
	CheckDigit  int
}

// ParseNationalID checks raw and decomposes it. The returned error wraps one of
// the ErrNationalID* sentinels, naming the first check that failed.
// Sequence and check digit are only constrained to be digits.
func ParseNationalID(raw string) (NationalID, error) {
	s, ok := trimmed(&raw)
	if !ok {
		return NationalID{}, ErrNationalIDEmpty
	}
	if len(s) != nationalIDLength || !isDigits(s) {
		return NationalID{}, fmt.Errorf("expected %d digits, got %q: %w", nationalIDLength, logger.MaskDigits(s), ErrNationalIDFormat)
	}

	century := digitsAt(s, 0, 1)
	if century != Century1900 && century != Century2000 {
		return NationalID{}, fmt.Errorf("century %d: %w", century, ErrNationalIDCentury)
	}

	yy := digitsAt(s, 1, 2)
	mm := digitsAt(s, 3, 2)
	dd := digitsAt(s, 5, 2)
	gov := digitsAt(s, 7, 2)

	if mm < 1 || mm > 12 {
		return NationalID{}, fmt.Errorf("month %02d: %w", mm, ErrNationalIDMonth)
	}
	if dd < 1 || dd > 31 {
		return NationalID{}, fmt.Errorf("day %02d: %w", dd, ErrNationalIDDay)
	}
	if gov < minGovernorate || gov > maxGovernorate {
		return NationalID{}, fmt.Errorf("governorate %02d: %w", gov, ErrNationalIDGovernorate)
	}

	year := 1900 + yy
	if century == Century2000 {
		year = 2000 + yy
	}

	birth, ok := calendarDate(year, mm, dd)
	if !ok {
		return NationalID{}, fmt.Errorf("%04d-%02d-%02d: %w", year, mm, dd, ErrNationalIDDate)
	}

	return NationalID{
		Century:     century,
		BirthDate:   birth,
		Governorate: gov,
		Sequence:    s[9:13],
		CheckDigit:  digitsAt(s, 13, 1),
	}, nil
}

// ValidateNationalID reports whether nationalID is a well-formed Egyptian
// national ID carrying a real birth date.
func ValidateNationalID(nationalID *string) bool {
	if nationalID == nil {
		return false
	}
	_, err := ParseNationalID(*nationalID)
	return err == nil
}

// calendarDate builds the date and reports false when time.Date had to
// normalize it (Feb 30, Apr 31, Feb 29 outside leap years).
func calendarDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// digitsAt decodes n ASCII digits of s starting at i. Callers check isDigits first.
func digitsAt(s string, i, n int) int {
	v := 0
	for _, c := range []byte(s[i : i+n]) {
		v = v*10 + int(c-'0')
	}
	return v
}
