package auth

// FederatedIdentity is the account a provider verifier vouched for after an
// OAuth code exchange. Provider and Subject together key the local user, whose
// username becomes "<provider>:<subject>"; Name seeds the display name.
type FederatedIdentity struct {
	Provider string
	Subject  string
	Name     string
	Email    string
}
