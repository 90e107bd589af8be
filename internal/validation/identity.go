package validation

import (
	"regexp"
	"strings"

	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

const phoneNumberLength = 11

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	digitsOnly   = regexp.MustCompile(`^[0-9]+$`)
)

// IdentityValidator checks candidate email addresses and phone numbers. It is
// stateless apart from the injected prefix table.
type IdentityValidator struct {
	prefixes *PrefixTable
}

// NewIdentityValidator builds a validator over the given prefix table.
func NewIdentityValidator(prefixes *PrefixTable) *IdentityValidator {
	return &IdentityValidator{prefixes: prefixes}
}

// ValidateEmail normalizes and syntax-checks an email address.
func (v *IdentityValidator) ValidateEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", apperrors.NewValidationError("email required", nil)
	}
	if !emailPattern.MatchString(email) {
		return "", apperrors.NewValidationError("invalid email address", map[string]any{"email": raw})
	}
	return email, nil
}

// ValidatePhone checks that the number is exactly 11 digits and resolves its
// carrier network. The 4-digit prefix is tried first, then the 5-digit one;
// the first match wins and no match fails validation.
func (v *IdentityValidator) ValidatePhone(raw string) (string, string, error) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return "", "", apperrors.NewValidationError("phone number required", nil)
	}
	if len(phone) != phoneNumberLength || !digitsOnly.MatchString(phone) {
		return "", "", apperrors.NewValidationError("phone number must be exactly 11 digits", map[string]any{"phone_number": raw})
	}

	if network, ok := v.prefixes.Resolve(phone[:4]); ok {
		return phone, network, nil
	}
	if network, ok := v.prefixes.Resolve(phone[:5]); ok {
		return phone, network, nil
	}
	return "", "", apperrors.NewValidationError("phone number does not match any known mobile network", map[string]any{"phone_number": raw})
}
