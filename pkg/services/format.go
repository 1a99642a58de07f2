package services

import "time"

// FormatDate converts a strict ISO "YYYY-MM-DD" date into "Month DD, YYYY".
// The error is propagated; catalog validation keeps malformed dates out of
// the request path.
func FormatDate(dateString string) (string, error) {
	t, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return "", err
	}
	return t.Format("January 02, 2006"), nil
}
