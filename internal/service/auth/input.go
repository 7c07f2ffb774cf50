package auth

import "github.com/heartmarshall/topiclog/internal/domain"

// OAuthInput holds parameters for federated sign-in.
type OAuthInput struct {
	Provider string
	Code     string
}

// Validate validates the oauth input.
func (i OAuthInput) Validate(isAllowed func(string) bool) error {
	var errs []domain.FieldError

	if i.Provider == "" {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "required"})
	} else if !isAllowed(i.Provider) {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "unsupported provider"})
	}

	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	} else if len(i.Code) > 4096 {
		errs = append(errs, domain.FieldError{Field: "code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
