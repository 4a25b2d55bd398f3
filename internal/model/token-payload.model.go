package model

// TokenPayload carries the fields decoded from an authentication token.
// Every field is optional; a nil accessor result means the claim was absent,
// which is distinct from an empty string or a zero id.
type TokenPayload struct {
	userID *int64
	email  *string
	name   *string
}

// NewTokenPayload stores the given values verbatim. Pointed-to values are
// copied, so later changes by the caller do not leak into the payload.
func NewTokenPayload(userID *int64, email, name *string) TokenPayload {
	return TokenPayload{
		userID: clone(userID),
		email:  clone(email),
		name:   clone(name),
	}
}

func (p TokenPayload) UserID() *int64 {
	return clone(p.userID)
}

func (p TokenPayload) Email() *string {
	return clone(p.email)
}

func (p TokenPayload) Name() *string {
	return clone(p.name)
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
