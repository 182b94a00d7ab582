package earnings

import "time"

type EarningType string

const (
	TypePurchase      EarningType = "purchase"
	TypeDailyClaim    EarningType = "daily_claim"
	TypeReferral      EarningType = "referral"
	TypeAdminGrant    EarningType = "admin_grant"
	TypePointsUsed    EarningType = "points_used"
	TypeOrderBonus    EarningType = "order_bonus"
	TypeOrderFeedback EarningType = "order_feedback"
)

// Valid reports whether t is one of the known earning types.
func (t EarningType) Valid() bool {
	switch t {
	case TypePurchase, TypeDailyClaim, TypeReferral, TypeAdminGrant,
		TypePointsUsed, TypeOrderBonus, TypeOrderFeedback:
		return true
	}
	return false
}

// Earning is an immutable ledger entry. Rows are only ever appended;
// balances are derived by summation, never stored.
type Earning struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"user_id"`
	Type           EarningType `json:"earning_type"`
	PointsEarned   float64     `json:"points_earned"`
	PointsSpent    float64     `json:"points_spent"`
	Description    string      `json:"description"`
	ReferenceID    *int64      `json:"reference_id"`
	ConversionRate float64     `json:"conversion_rate"`
	CreatedAt      time.Time   `json:"created_at"`
}

type Balance struct {
	TotalEarned    float64 `json:"total_earned"`
	TotalSpent     float64 `json:"total_spent"`
	CurrentBalance float64 `json:"current_balance"`
}
