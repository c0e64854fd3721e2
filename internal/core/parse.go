package core

import (
	"strings"
	"time"
)

// ParseDate parses raw as DD-MM-YYYY. Single digit day and month are accepted;
// the result always renders zero padded.
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(dateParseLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, ErrInvalidFormat
	}
	return Date{Time: t}, nil
}

// ParseDateOrDefault behaves like ParseDate, except that an empty raw value
// yields today's date (taken from now) when allowDefault is set.
func ParseDateOrDefault(raw string, allowDefault bool, now time.Time) (Date, error) {
	if allowDefault && strings.TrimSpace(raw) == "" {
		return DateOf(now), nil
	}
	return ParseDate(raw)
}

// ParseCategory maps an entry code (I or E, any case) to its category.
func ParseCategory(raw string) (Category, error) {
	if c, ok := categoryCodes[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return c, nil
	}
	return "", ErrInvalidCategory
}

// ParseStoredCategory maps a persisted category word back to a Category.
func ParseStoredCategory(raw string) (Category, error) {
	c := Category(strings.TrimSpace(raw))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// ParseDescription returns raw unchanged; the description is optional.
func ParseDescription(raw string) string {
	return raw
}
