// Package dateutil provides date rendering utilities.
package dateutil

import "time"

// mediumFormat is the medium date style used across rendered documents.
// The locale is fixed to English so output stays byte-deterministic.
const mediumFormat = "Jan 2, 2006"

// Medium renders a date in medium style, e.g. "Aug 28, 2026".
// The zero time renders as an empty string.
func Medium(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(mediumFormat)
}
