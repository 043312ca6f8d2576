package auth

import "context"

var _ Reader = (*SessionReader)(nil)
var _ Reader = (*SessionTestReader)(nil)

// Reader resolves a bearer token to the id of the user that owns it.
// Sessions are issued by the upstream identity service, never here.
type Reader interface {
	UserID(ctx context.Context, token string) (string, error)
}
