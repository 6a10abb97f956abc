package domain

import "time"

// Session holds the per-user state of one running program: login status,
// reminder timer anchors, and transient forum view toggles. Forum content
// itself is shared process-wide and lives behind ports.ForumRepository.
type Session struct {
	LoggedIn bool
	Username string

	// WaterStart and FertilizerStart are nil until the first successful
	// login. They are always set together, to the same instant.
	WaterStart      *time.Time
	FertilizerStart *time.Time

	// ReplyPanelOpen tracks which posts currently show their reply form,
	// keyed by post index. Not part of forum content.
	ReplyPanelOpen map[int]bool
}

func NewSession() *Session {
	return &Session{
		ReplyPanelOpen: map[int]bool{},
	}
}

// Arm records a successful login and (re)starts both reminder timers.
// Re-login resets elapsed time to zero.
func (s *Session) Arm(username string, now time.Time) {
	s.LoggedIn = true
	s.Username = username
	s.WaterStart = &now
	s.FertilizerStart = &now
}
