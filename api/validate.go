package api

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
)

// Field validators shared by the per-entity request payloads. Each payload
// type validates in full before any storage call so the response can name
// every failing field at once.

// checkString enforces presence (when required) and non-emptiness of a
// string field.
func checkString(l *errs.FieldList, required bool, name string, v *string) {
	if v == nil {
		if required {
			l.Add(name, "is required")
		}
		return
	}
	if strings.TrimSpace(*v) == "" {
		l.Add(name, "must not be empty")
	}
}

// checkEnum enforces membership in a closed enum when the field is present.
func checkEnum(l *errs.FieldList, required bool, name string, v *string, allowed []string) {
	if v == nil {
		if required {
			l.Add(name, "is required")
		}
		return
	}
	for _, a := range allowed {
		if *v == a {
			return
		}
	}
	l.Add(name, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
}

// checkRange enforces an inclusive integer range when the field is present.
func checkRange(l *errs.FieldList, required bool, name string, v *int, min, max int) {
	if v == nil {
		if required {
			l.Add(name, "is required")
		}
		return
	}
	if *v < min || *v > max {
		l.Add(name, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

// checkEmail enforces a parseable address when the field is present.
func checkEmail(l *errs.FieldList, required bool, name string, v *string) {
	if v == nil {
		if required {
			l.Add(name, "is required")
		}
		return
	}
	if _, err := mail.ParseAddress(*v); err != nil {
		l.Add(name, "must be a valid email address")
	}
}

// checkDate parses an ISO date or RFC 3339 timestamp, recording a field
// error on failure. Returns the parsed time when the field is present and
// valid.
func checkDate(l *errs.FieldList, name string, v *string) *time.Time {
	if v == nil || *v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *v); err == nil {
			return &t
		}
	}
	l.Add(name, "must be an ISO date (2006-01-02) or RFC 3339 timestamp")
	return nil
}
