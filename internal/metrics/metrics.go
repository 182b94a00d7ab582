package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acclivity_orders_placed_total",
		Help: "Number of orders successfully placed.",
	})

	OrderItemsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acclivity_order_items_added_total",
		Help: "Number of order items added after a successful stock decrement.",
	})

	StockConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acclivity_stock_conflicts_total",
		Help: "Number of order item requests rejected due to insufficient stock.",
	})

	PointsEarned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acclivity_points_earned_total",
		Help: "Total points credited across all earning types.",
	})

	PointsSpent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acclivity_points_spent_total",
		Help: "Total points debited.",
	})

	DailyClaims = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acclivity_daily_claims_total",
		Help: "Number of daily login bonuses recorded.",
	})

	FeedbackBonuses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "acclivity_feedback_bonuses_total",
		Help: "Number of one-time feedback bonuses awarded.",
	})
)

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
