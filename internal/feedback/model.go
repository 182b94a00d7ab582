package feedback

import "time"

// Feedback is a customer's rating of a delivered product. One row exists
// per (order_id, product_id) pair; re-submissions update the ratings in
// place. PointsAwarded stays zero until the bonus is claimed exactly once.
type Feedback struct {
	ID             int64     `json:"id"`
	OrderID        int64     `json:"order_id"`
	ProductID      int64     `json:"product_id"`
	UserID         int64     `json:"user_id"`
	ProductRating  int       `json:"product_rating"`
	DeliveryRating int       `json:"delivery_rating"`
	FeedbackText   string    `json:"feedback_text"`
	PointsAwarded  float64   `json:"points_awarded"`
	CreatedAt      time.Time `json:"created_at"`
}

type Review struct {
	ProductRating  int       `json:"product_rating"`
	DeliveryRating int       `json:"delivery_rating"`
	FeedbackText   string    `json:"feedback_text"`
	CustomerName   string    `json:"customer_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// RatingBreakdown counts reviews per star value.
type RatingBreakdown struct {
	One   int64 `json:"1"`
	Two   int64 `json:"2"`
	Three int64 `json:"3"`
	Four  int64 `json:"4"`
	Five  int64 `json:"5"`
}

type Summary struct {
	ProductID     int64           `json:"product_id"`
	AverageRating float64         `json:"average_rating"`
	TotalReviews  int64           `json:"total_reviews"`
	Breakdown     RatingBreakdown `json:"rating_breakdown"`
	Reviews       []*Review       `json:"reviews"`
}

// PesosPerBonusPoint sets the feedback bonus scale: one point per 50
// pesos of order total, minimum one point.
const PesosPerBonusPoint = 50

const (
	MinRating = 1
	MaxRating = 5
)
