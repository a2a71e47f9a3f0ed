package application

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/bnema/cgx-claimer/internal/ports"
	"go.uber.org/zap"
)

// Workflow processes a single account: authenticate, check the mining
// timer, claim and restart when it has elapsed, then try the daily mission.
// Endpoint failures are logged and skipped; only context cancellation is
// returned as an error.
type Workflow struct {
	api    ports.RewardsAPI
	clock  ports.Clock
	cfg    Config
	logger *zap.Logger
}

func NewWorkflow(api ports.RewardsAPI, clock ports.Clock, cfg Config, logger *zap.Logger) *Workflow {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Workflow{api: api, clock: clock, cfg: cfg, logger: logger}
}

// Run returns the account's report. Report.Delay is the account's
// contribution to the wait before the next pass.
func (w *Workflow) Run(ctx context.Context, token domain.Token) (domain.AccountReport, error) {
	report := domain.AccountReport{Label: token.Label()}
	logger := w.logger.With(zap.String("account", report.Label))

	user, err := w.api.Authenticate(ctx, token)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}
		logger.Error("authentication failed", zap.Error(err))
		report.Delay = w.cfg.SleepInterval
		return report, nil
	}
	report.Authenticated = true
	report.User = user
	logger.Info("authenticated",
		zap.String("username", user.Username),
		zap.Stringer("sol_balance", user.SolBalance),
		zap.Stringer("cgxmas_balance", user.CgxmasBalance),
	)

	remain, err := w.checkMining(ctx, token, logger, &report)
	if err != nil {
		return report, err
	}

	if err := w.checkDaily(ctx, token, logger, &report); err != nil {
		return report, err
	}

	report.Delay = remain
	return report, nil
}

func (w *Workflow) checkMining(ctx context.Context, token domain.Token, logger *zap.Logger, report *domain.AccountReport) (time.Duration, error) {
	session, err := w.api.MiningStatus(ctx, token)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		logger.Error("mining status failed", zap.Error(err))
		return 0, nil
	}
	report.StatusChecked = true

	remain := session.Remaining(w.clock.Now())
	report.Remaining = remain
	if remain > 0 {
		logger.Info("mining cycle not yet claimable", zap.Duration("remaining", remain))
		return remain, nil
	}
	logger.Info("mining cycle ready, claiming")

	if err := w.clock.Sleep(ctx, w.cfg.StepDelay); err != nil {
		return 0, err
	}

	// The restart below runs whether or not the claim succeeded.
	claim, err := w.api.ClaimMining(ctx, token)
	switch {
	case err == nil:
		report.Claim = domain.StepSucceeded
		report.TokensEarned = claim.TokensEarned
		logger.Info("mining reward claimed", zap.Stringer("tokens_earned", claim.TokensEarned))
	case ctx.Err() != nil:
		return 0, ctx.Err()
	default:
		report.Claim = domain.StepFailed
		logger.Error("mining claim failed", zap.Error(err))
	}

	if err := w.clock.Sleep(ctx, w.cfg.StepDelay); err != nil {
		return 0, err
	}

	started, err := w.api.StartMining(ctx, token)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		report.Restart = domain.StepFailed
		logger.Error("mining restart failed", zap.Error(err))
		return 0, nil
	}
	report.Restart = domain.StepSucceeded
	remain = started.Duration.Duration()
	logger.Info("mining restarted", zap.Duration("duration", remain))

	return remain, nil
}

func (w *Workflow) checkDaily(ctx context.Context, token domain.Token, logger *zap.Logger, report *domain.AccountReport) error {
	missions, err := w.api.Missions(ctx, token)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		report.DailyCheck = domain.StepFailed
		logger.Error("daily check-in failed", zap.Error(err))
		return nil
	}
	report.DailyCheck = domain.StepSucceeded

	if len(missions) == 0 {
		logger.Debug("daily check-in skipped", zap.Error(domain.ErrNoMissions))
		return nil
	}

	reward, ok := missions[0].ClaimableDay(w.clock.Now())
	if !ok {
		logger.Debug("no daily reward claimable",
			zap.Int("current_day", missions[0].CurrentDay),
			zap.Time("next_claim_at", missions[0].NextClaimAt.Time()),
		)
		return nil
	}

	report.ClaimedDay = reward.Day
	if err := w.api.ClaimDailyReward(ctx, token, reward.Day); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		report.DailyClaim = domain.StepFailed
		logger.Error("daily reward claim failed", zap.Int("day", reward.Day), zap.Error(err))
		return nil
	}
	report.DailyClaim = domain.StepSucceeded
	logger.Info("daily reward claimed", zap.Int("day", reward.Day))

	return nil
}

// IsCanceled reports whether err stems from context cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
