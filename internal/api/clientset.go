package api

import (
	"log"
	"sync"
)

// ClientSet holds the two client configurations an app uses: one
// unauthenticated (login/register) and one that attaches the bearer token.
// Both share the base URL and are built lazily, exactly once, so concurrent
// first callers never race to construct two instances.
type ClientSet struct {
	base   string
	tokens TokenSource
	log    *log.Logger

	publicOnce sync.Once
	public     *Client
	authedOnce sync.Once
	authed     *Client
}

// NewClientSet prepares lazy construction; no client exists until first use.
func NewClientSet(base string, tokens TokenSource, l *log.Logger) *ClientSet {
	if l == nil {
		l = log.Default()
	}
	return &ClientSet{base: base, tokens: tokens, log: l}
}

// Public returns the unauthenticated client.
func (s *ClientSet) Public() *Client {
	s.publicOnce.Do(func() {
		s.public = NewClient(s.base, WithLogger(s.log))
	})
	return s.public
}

// Authed returns the token-attaching client.
func (s *ClientSet) Authed() *Client {
	s.authedOnce.Do(func() {
		s.authed = NewClient(s.base, WithLogger(s.log), WithTokenSource(s.tokens))
	})
	return s.authed
}
