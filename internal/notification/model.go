package notification

import "time"

type Notification struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	TargetAudience string    `json:"target_audience"`
	IsActive       bool      `json:"is_active"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	DefaultType     = "general"
	DefaultAudience = "all"
	DefaultLimit    = 50
)
