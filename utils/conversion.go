package utils

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Layouts clients have been seen sending for booking dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// DayString normalizes a stored date value to its UTC calendar day in
// YYYY-MM-DD form. Bookings carry whatever the client sent, so the value may
// be a BSON datetime or one of several string layouts. Returns false when the
// value is missing or unparseable.
func DayString(v interface{}) (string, bool) {
	switch d := v.(type) {
	case primitive.DateTime:
		return d.Time().UTC().Format("2006-01-02"), true
	case time.Time:
		return d.UTC().Format("2006-01-02"), true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t.UTC().Format("2006-01-02"), true
			}
		}
	}
	return "", false
}
