package auth

import "github.com/heartmarshall/topiclog/internal/domain"

// AuthResult carries the bearer token that scopes topic-log requests to User.
// There is no refresh token; clients sign in again once AccessToken expires.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
