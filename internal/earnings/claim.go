package earnings

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Claim eligibility windows, in hours since the previous claim.
const (
	claimCooldownHours = 24
	claimStreakHours   = 48
)

var streakDayPattern = regexp.MustCompile(`Day (\d+)`)

// ClaimStatus describes the daily-claim state machine for one user:
// no prior claim, cooling down, or eligible (with or without the
// streak surviving).
type ClaimStatus struct {
	CanClaim    bool
	LastClaimAt *time.Time
	Streak      int
	HoursSince  *float64
}

// StreakDay extracts the streak day encoded in a daily_claim description
// ("Daily login bonus - Day 3" -> 3). Returns 0 when no day is encoded.
func StreakDay(description string) int {
	m := streakDayPattern.FindStringSubmatch(description)
	if m == nil {
		return 0
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return day
}

// ClaimDescription formats the description persisted with a daily claim.
// StreakDay must be able to recover the day from it.
func ClaimDescription(streakDay int) string {
	return fmt.Sprintf("Daily login bonus - Day %d", streakDay)
}

// EvaluateClaim decides eligibility and the resulting streak given the most
// recent daily_claim entry (nil when the user has never claimed):
//
//	no prior claim    -> eligible, streak 0 (next claim becomes Day 1)
//	< 24h             -> not eligible, streak unchanged
//	24h <= h < 48h    -> eligible, streak unchanged (caller increments)
//	>= 48h            -> eligible, streak reset to 0 (run broken)
func EvaluateClaim(last *Earning, now time.Time) ClaimStatus {
	if last == nil {
		return ClaimStatus{CanClaim: true}
	}

	lastAt := last.CreatedAt
	hours := now.Sub(lastAt).Hours()
	streak := StreakDay(last.Description)

	status := ClaimStatus{
		LastClaimAt: &lastAt,
		HoursSince:  &hours,
		Streak:      streak,
	}

	switch {
	case hours < claimCooldownHours:
		status.CanClaim = false
	case hours < claimStreakHours:
		status.CanClaim = true
	default:
		status.CanClaim = true
		status.Streak = 0
	}

	return status
}
