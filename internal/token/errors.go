package token

import "errors"

var (
	ErrMissingToken  = errors.New("token: missing token")
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrMissingSecret = errors.New("token: missing signing secret")
)
