package i

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-planner/domain"
)

// Authenticator registers users and signs them in.
type Authenticator interface {
	Register(username, password string) error
	// SignIn returns the user and a bearer token for it.
	SignIn(username, password string) (*dmn.User, string, error)
}

// Tokenizer issues and checks bearer tokens.
type Tokenizer interface {
	// Generate creates a token with the given claims and expiration duration.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
