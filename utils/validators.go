// File: /utils/validators.go
package utils

import (
	"regexp"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidPassword(password string) bool {
	return len(password) >= 6
}

// IsValidRecordDate accepts ISO calendar dates (YYYY-MM-DD, no time part).
func IsValidRecordDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
