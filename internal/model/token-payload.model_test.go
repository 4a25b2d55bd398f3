package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestTokenPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID *int64
		email  *string
		uname  *string
	}{
		{name: "all present", userID: ptr(int64(7)), email: ptr("a@b.com"), uname: ptr("Ann")},
		{name: "all absent"},
		{name: "only user id", userID: ptr(int64(7))},
		{name: "only email", email: ptr("a@b.com")},
		{name: "only name", uname: ptr("Ann")},
		{name: "id and email", userID: ptr(int64(7)), email: ptr("a@b.com")},
		{name: "email and name", email: ptr("a@b.com"), uname: ptr("Ann")},
		{name: "empty values are kept", userID: ptr(int64(0)), email: ptr(""), uname: ptr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewTokenPayload(tt.userID, tt.email, tt.uname)
			assert.Equal(t, tt.userID, p.UserID())
			assert.Equal(t, tt.email, p.Email())
			assert.Equal(t, tt.uname, p.Name())
		})
	}
}

func TestTokenPayloadIsImmutable(t *testing.T) {
	t.Parallel()

	id := int64(7)
	email := "a@b.com"
	p := NewTokenPayload(&id, &email, nil)

	id = 8
	email = "changed"
	assert.Equal(t, int64(7), *p.UserID())
	assert.Equal(t, "a@b.com", *p.Email())

	got := p.Email()
	*got = "mutated"
	assert.Equal(t, "a@b.com", *p.Email())
	assert.Nil(t, p.Name())
}

func TestTokenPayloadZeroValue(t *testing.T) {
	t.Parallel()

	var p TokenPayload
	assert.Nil(t, p.UserID())
	assert.Nil(t, p.Email())
	assert.Nil(t, p.Name())
}
