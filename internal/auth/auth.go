package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is deliberately generic: a wrong user and a wrong
// secret are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("usuario o clave incorrecta")

// DefaultUsers is the sales team table. It is a development stand-in, not a
// credential system; a real deployment replaces Sessions' user table with
// an external identity provider.
func DefaultUsers() map[string]string {
	return map[string]string{
		"NICOLE":  "12345NICOLE",
		"KEVIN":   "12345KEVIN",
		"WANDA":   "12345WANDA",
		"GENESIS": "12345GENESIS",
		"LUIS":    "12345LUIS",
	}
}

// SalesPersons lists the known salesperson names, for the list view's
// salesperson filter.
func SalesPersons() []string {
	return []string{"NICOLE", "KEVIN", "WANDA", "GENESIS", "LUIS"}
}

// Sessions gates order intake behind a login step. A session authorizes
// exactly one order creation: the create handler consumes it, so the next
// order requires a fresh login, matching the form's behavior.
type Sessions struct {
	mu     sync.Mutex
	users  map[string]string
	active map[string]string // token -> salesperson
}

func NewSessions(users map[string]string) *Sessions {
	return &Sessions{
		users:  users,
		active: make(map[string]string),
	}
}

// Login checks the pair against the static table and opens a session.
func (s *Sessions) Login(salesPerson, secret string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want, ok := s.users[salesPerson]
	if !ok || want != secret {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.active[token] = salesPerson
	return token, nil
}

// SalesPerson resolves a session token to its authenticated salesperson.
func (s *Sessions) SalesPerson(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, ok := s.active[token]
	return sp, ok
}

// Consume closes a session after it has been used to create an order.
func (s *Sessions) Consume(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.active, token)
}
