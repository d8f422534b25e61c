package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsUsable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{name: "nil session", session: nil, want: false},
		{name: "confirmed without expiry", session: &Session{UserID: "u1", EmailConfirmed: true}, want: true},
		{name: "confirmed and unexpired", session: &Session{UserID: "u1", EmailConfirmed: true, ExpiresAt: &future}, want: true},
		{name: "expired", session: &Session{UserID: "u1", EmailConfirmed: true, ExpiresAt: &past}, want: false},
		{name: "expires exactly now", session: &Session{UserID: "u1", EmailConfirmed: true, ExpiresAt: &now}, want: false},
		{name: "unconfirmed", session: &Session{UserID: "u1", ExpiresAt: &future}, want: false},
		{name: "missing user id", session: &Session{EmailConfirmed: true, ExpiresAt: &future}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.IsUsable(now))
		})
	}
}

func TestAuthState(t *testing.T) {
	state := Authenticated("u1")
	id, ok := state.UserID()
	assert.True(t, state.IsAuthenticated())
	assert.True(t, ok)
	assert.Equal(t, "u1", id)
	assert.Equal(t, "authenticated", state.String())

	assert.False(t, Unauthenticated().IsAuthenticated())
	assert.Equal(t, Unauthenticated(), AuthState{})
}

func TestValidationResult_Message(t *testing.T) {
	valid := NewValidationResult(nil)
	assert.True(t, valid.IsValid)
	assert.Empty(t, valid.Messages)
	assert.Equal(t, "", valid.Message())

	invalid := NewValidationResult([]string{"first", "second"})
	assert.False(t, invalid.IsValid)
	assert.Equal(t, "first", invalid.Message())
}
