package ports

import "context"

// TokenStore resolves the session cookies sent along with API requests. A
// missing cookie yields an empty string and a nil error.
type TokenStore interface {
	Token(ctx context.Context, name string) (string, error)
	CookieHeader(ctx context.Context) (string, error)
}
