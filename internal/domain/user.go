package domain

import (
	"log/slog"
	"strings"
)

// FederatedCredentialPrefix marks the credential of an account created through
// federated sign-in. Such a credential is never a valid password hash.
const FederatedCredentialPrefix = "!federated:"

// User represents an application user.
type User struct {
	ID          int64
	Username    string
	Credential  string
	DisplayName string
}

// IsFederated reports whether the account was created by federated sign-in.
func (u *User) IsFederated() bool {
	return strings.HasPrefix(u.Credential, FederatedCredentialPrefix)
}

// LogValue implements slog.LogValuer. The credential is never emitted.
func (u User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("id", u.ID),
		slog.String("username", u.Username),
		slog.String("display_name", u.DisplayName),
	)
}
