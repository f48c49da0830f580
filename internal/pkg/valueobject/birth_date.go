package valueobject

import (
	"time"

	"github.com/shandysiswandi/goident/internal/pkg/apperror"
)

const (
	birthDateLabel  = "birth_date"
	birthDateLayout = "20060102"
	birthDateLen    = 8
)

// BirthDate is a calendar date that is valid and not in the future.
//
// The value is date-only; the wall-clock part is always midnight UTC.
type BirthDate struct {
	date time.Time
}

// ParseBirthDate validates raw input as an 8-digit YYYYMMDD birth date.
//
// The input goes through text normalization first (min = max = 8 grapheme
// clusters), so full-width digits are accepted. today supplies the current
// calendar date for the future-date check; pass it from the clock once per
// operation. A nil result with a nil error means the input was empty and
// the field is optional. Present-but-invalid input is always an error.
func ParseBirthDate(input string, required bool, today time.Time) (*BirthDate, error) {
	text, err := Normalize(input, TextRule{
		Label:    birthDateLabel,
		Required: required,
		MinLen:   birthDateLen,
		MaxLen:   birthDateLen,
	})
	if err != nil {
		return nil, err
	}
	if text == nil {
		return nil, nil
	}

	parsed, err := time.Parse(birthDateLayout, text.String())
	if err != nil {
		return nil, apperror.Newf(apperror.KindUnprocessableContent,
			"%s must be in YYYYMMDD format", birthDateLabel)
	}

	date := dateOnly(parsed)
	if date.After(dateOnly(today)) {
		return nil, apperror.Newf(apperror.KindUnprocessableContent,
			"%s cannot be a future date", birthDateLabel)
	}

	return &BirthDate{date: date}, nil
}

// BirthDateFrom wraps an already-validated date, e.g. one read back from
// storage. It skips string parsing and the future-date check.
func BirthDateFrom(t time.Time) BirthDate {
	return BirthDate{date: dateOnly(t)}
}

// Date returns the wrapped calendar date at midnight UTC.
func (b BirthDate) Date() time.Time {
	return b.date
}

// String returns the date in YYYYMMDD form.
func (b BirthDate) String() string {
	return b.date.Format(birthDateLayout)
}

// AgeOn computes age in whole years as of today.
//
// When the birthday is Feb 29 and today's year is not a leap year, the
// anniversary is taken as Feb 28. The result is never negative; the
// future-date guard at construction makes a negative age unreachable.
func (b BirthDate) AgeOn(today time.Time) (int, error) {
	t := dateOnly(today)
	age := t.Year() - b.date.Year()

	anniversary, ok := anniversaryInYear(t.Year(), b.date.Month(), b.date.Day())
	if !ok {
		return 0, apperror.Newf(apperror.KindUnprocessableContent, "%s value is invalid", birthDateLabel)
	}

	if t.Before(anniversary) {
		age--
	}

	if age < 0 {
		return 0, apperror.Newf(apperror.KindUnprocessableContent, "%s value is invalid", birthDateLabel)
	}

	return age, nil
}

// anniversaryInYear recomposes the birthday in the given year. time.Date
// silently normalizes invalid dates (Feb 29 becomes Mar 1 in non-leap
// years), so a recomposition that moved is detected and only the leap-day
// case is substituted with Feb 28.
func anniversaryInYear(year int, month time.Month, day int) (time.Time, bool) {
	anniversary := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if anniversary.Month() == month && anniversary.Day() == day {
		return anniversary, true
	}

	if month == time.February && day == 29 {
		return time.Date(year, time.February, 28, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
