package auth

import "context"

// SessionTestReader serves sessions from memory, for dev and tests.
type SessionTestReader struct {
	Sessions map[string]string
}

func NewSessionTestReader() *SessionTestReader {
	return &SessionTestReader{
		Sessions: map[string]string{},
	}
}

func (r *SessionTestReader) UserID(_ context.Context, token string) (string, error) {
	userID, ok := r.Sessions[token]
	if !ok {
		return "", ErrNoSession
	}
	return userID, nil
}
