package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	s := NewSessions(DefaultUsers())

	t.Run("correct pair opens a session", func(t *testing.T) {
		token, err := s.Login("NICOLE", "12345NICOLE")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		sp, ok := s.SalesPerson(token)
		assert.True(t, ok)
		assert.Equal(t, "NICOLE", sp)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		_, err := s.Login("NICOLE", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user is rejected with the same error", func(t *testing.T) {
		_, err := s.Login("MALLORY", "12345NICOLE")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestConsume(t *testing.T) {
	s := NewSessions(DefaultUsers())

	token, err := s.Login("KEVIN", "12345KEVIN")
	require.NoError(t, err)

	s.Consume(token)

	_, ok := s.SalesPerson(token)
	assert.False(t, ok, "a consumed session must not authorize anything")

	// consuming twice is harmless
	s.Consume(token)
}

func TestSalesPersonUnknownToken(t *testing.T) {
	s := NewSessions(DefaultUsers())

	_, ok := s.SalesPerson("not-a-token")
	assert.False(t, ok)

	_, ok = s.SalesPerson("")
	assert.False(t, ok)
}

func TestSessionsAreIndependent(t *testing.T) {
	s := NewSessions(DefaultUsers())

	t1, err := s.Login("WANDA", "12345WANDA")
	require.NoError(t, err)
	t2, err := s.Login("LUIS", "12345LUIS")
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)

	s.Consume(t1)

	sp, ok := s.SalesPerson(t2)
	assert.True(t, ok)
	assert.Equal(t, "LUIS", sp)
}
