package entity

import "time"

// Session represents a user's authentication session.
// The ID is the opaque server-side session identity; clients only ever see
// it wrapped in a signed token.
type Session struct {
	ID        string    // Opaque session identity (64-character hex string)
	UserID    string    // Associated user ID
	UserAgent string    // Client's User-Agent header
	IPAddress string    // Client's IP address
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
