package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени внутри TimeString
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")
)

// TimeString represents a time of day as an "HH:MM" string.
// The slot grid and the booking conflict check rely on exact equality of
// these values, so the representation is normalized on every construction:
// database TIME values ("09:00:00") and client input ("9:00") both become
// "09:00".
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty string", ErrInvalidTimeString)
	}

	// Пробуем оба формата: "HH:MM" и "HH:MM:SS" (так TIME приходит из БД)
	for _, layout := range []string{timeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeString(t.Format(timeLayout)), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение имеет формат "HH:MM"
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает новый TimeString, сдвинутый на minutes минут вперёд
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return TimeString(t.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Value реализует driver.Valuer для записи в колонку TIME
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts) + ":00", nil
}

// Scan реализует sql.Scanner для чтения из колонки TIME
func (ts *TimeString) Scan(src interface{}) error {
	if src == nil {
		*ts = ""
		return nil
	}

	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
