package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray represents a JSONB-encoded array of strings
// (staff certifications/keywords, blog and tutorial tags, tutorial steps,
// calendar attendees). A NULL column scans to an empty, non-nil slice so
// responses always serialize as [] rather than null.
type StringArray []string

// Value реализует driver.Valuer для записи в колонку JSONB
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		a = StringArray{}
	}
	data, err := json.Marshal([]string(a))
	if err != nil {
		return nil, fmt.Errorf("types: failed to marshal string array: %w", err)
	}
	return data, nil
}

// Scan реализует sql.Scanner для чтения из колонки JSONB
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("types: unsupported scan type %T for string array", src)
	}

	if len(data) == 0 {
		*a = StringArray{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("types: failed to unmarshal string array: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*a = out
	return nil
}
