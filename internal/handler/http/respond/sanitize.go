package respond

import (
	"regexp"
)

// dbPasswordPattern matches the credential part of a connection DSN.
var dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

// SanitizeError returns the error message with credentials masked, safe for
// log output. Database errors routinely embed the DSN.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	return dbPasswordPattern.ReplaceAllString(err.Error(), "://$1:****@")
}
