package usecases

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	domainerrors "team-showcase.backend/internal/domain/errors"
)

// Whitespace here includes Unicode spaces (U+00A0, U+2028, U+FEFF, ...).
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// missingFields trims every named value in place and returns the names left blank.
func missingFields(names []string, values ...*string) []string {
	var missing []string
	for i, v := range values {
		*v = strings.TrimSpace(*v)
		if *v == "" {
			missing = append(missing, names[i])
		}
	}
	return missing
}

func requireFields(names []string, values ...*string) error {
	missing := missingFields(names, values...)
	if len(missing) == 0 {
		return nil
	}
	return requireFieldsError(missing)
}

func requireFieldsError(missing []string) error {
	return domainerrors.BadRequest("missing required fields: " + strings.Join(missing, ", "))
}

// trimPresent trims an optional field and rejects it when it is present but blank.
func trimPresent(name string, v *string) error {
	if v == nil {
		return nil
	}
	*v = strings.TrimSpace(*v)
	if *v == "" {
		return domainerrors.BadRequest(name + " cannot be empty")
	}
	return nil
}

// storeError turns a repository failure into an AppError. Missing records become 404,
// anything else a 500 carrying the underlying error as details.
func storeError(err error, notFound, failed string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(notFound)
	}
	return domainerrors.Internal(failed, fmt.Errorf("%s: %w", failed, err))
}
