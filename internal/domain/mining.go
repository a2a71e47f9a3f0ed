package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MiningSession struct {
	EndTime  EpochMillis `json:"endTime"`
	Duration Millis      `json:"duration"`
}

// Remaining is the time left until the session can be claimed, never
// negative. A session without an end time is ready.
func (s MiningSession) Remaining(now time.Time) time.Duration {
	remain := time.Duration(int64(s.EndTime)-now.UnixMilli()) * time.Millisecond
	if remain < 0 {
		return 0
	}

	return remain
}

type ClaimResult struct {
	Success      bool            `json:"success"`
	TokensEarned decimal.Decimal `json:"tokensEarned"`
}
