package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StepOutcome string

const (
	StepSkipped   StepOutcome = ""
	StepSucceeded StepOutcome = "ok"
	StepFailed    StepOutcome = "failed"
)

// AccountReport records what one workflow run observed for an account.
type AccountReport struct {
	Label         string
	Authenticated bool
	User          User
	StatusChecked bool
	// Remaining before any claim was attempted.
	Remaining    time.Duration
	Claim        StepOutcome
	TokensEarned decimal.Decimal
	Restart      StepOutcome
	DailyCheck   StepOutcome
	DailyClaim   StepOutcome
	ClaimedDay   int
	Delay        time.Duration
}

type PassReport struct {
	ID        string
	StartedAt time.Time
	Accounts  []AccountReport
	Delay     time.Duration
	Jitter    time.Duration
}

// Wait is the total sleep before the next pass.
func (r PassReport) Wait() time.Duration {
	return r.Delay + r.Jitter
}
