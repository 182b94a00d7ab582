package verification

import "time"

// Status of the latest identity check for a user. "none" is synthesized
// when no verification record exists.
const (
	StatusNone     = "none"
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

type Verification struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	NationalIDNumber *string    `json:"national_id_number"`
	MatchScore       *float64   `json:"match_score"`
	Status           string     `json:"status"`
	Notes            *string    `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	VerifiedAt       *time.Time `json:"verified_at"`
}
