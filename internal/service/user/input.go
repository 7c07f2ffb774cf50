package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/topiclog/internal/domain"
)

const (
	minUsernameLen    = 3
	maxUsernameLen    = 50
	minPasswordLen    = 8
	maxPasswordBytes  = 72 // bcrypt ignores anything past this
	maxDisplayNameLen = 100
)

// RegisterInput holds parameters for local account registration.
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	n := utf8.RuneCountInString(i.Username)
	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case n < minUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too short"})
	case n > maxUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	case strings.ContainsAny(i.Username, ": \t\r\n") || !domain.IsStorableText(i.Username):
		// ':' is reserved for federated usernames.
		errs = append(errs, domain.FieldError{Field: "username", Message: "invalid characters"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case utf8.RuneCountInString(i.Password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordBytes:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	switch {
	case !domain.IsStorableText(i.DisplayName):
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "invalid characters"})
	case utf8.RuneCountInString(i.DisplayName) > maxDisplayNameLen:
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AuthenticateInput holds parameters for password sign-in.
type AuthenticateInput struct {
	Username string
	Password string
}

// Validate validates the authenticate input.
func (i AuthenticateInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FederatedInput identifies a user asserted by an external identity provider.
type FederatedInput struct {
	Provider    string
	Subject     string
	DisplayName string
}

// Validate validates the federated input against the allowed providers.
func (i FederatedInput) Validate(isAllowed func(string) bool) error {
	var errs []domain.FieldError

	if i.Provider == "" {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "required"})
	} else if !isAllowed(i.Provider) {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "unsupported provider"})
	}

	if i.Subject == "" {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	} else if len(i.Subject) > 255 {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "too long"})
	} else if !domain.IsStorableText(i.Subject) {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "invalid characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// federatedUsername is the username a federated account is stored under.
func federatedUsername(provider, subject string) string {
	return provider + ":" + subject
}

func optionalName(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || !domain.IsStorableText(s) {
		return nil
	}
	return &s
}
