package application

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/bnema/cgx-claimer/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Scheduler struct {
	sessions ports.SessionSource
	workflow *Workflow
	clock    ports.Clock
	cfg      Config
	logger   *zap.Logger

	jitter func() time.Duration
	newID  func() string

	// OnPass, when set, receives every completed pass report before the
	// scheduler sleeps.
	OnPass func(domain.PassReport)
}

func NewScheduler(sessions ports.SessionSource, workflow *Workflow, clock ports.Clock, cfg Config, logger *zap.Logger) *Scheduler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		sessions: sessions,
		workflow: workflow,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
		jitter:   uniformJitter(cfg.JitterMin, cfg.JitterMax),
		newID:    uuid.NewString,
	}
}

// uniformJitter draws whole milliseconds from [min, max).
func uniformJitter(lo, hi time.Duration) func() time.Duration {
	span := (hi - lo).Milliseconds()
	return func() time.Duration {
		if span <= 0 {
			return lo
		}
		return lo + time.Duration(rand.Int64N(span))*time.Millisecond
	}
}

// LoadAccounts reads the credential list. A read failure is logged and
// yields no accounts.
func (s *Scheduler) LoadAccounts(ctx context.Context) []domain.Token {
	tokens, err := s.sessions.Load(ctx)
	if err != nil {
		s.logger.Error("load accounts failed", zap.Error(err))
		return nil
	}

	return tokens
}

// Run loads the accounts once and processes them until ctx is done. It
// returns nil right away when there are no accounts.
func (s *Scheduler) Run(ctx context.Context) error {
	tokens := s.LoadAccounts(ctx)
	if len(tokens) == 0 {
		s.logger.Warn(domain.ErrNoAccounts.Error())
		return nil
	}
	s.logger.Info("accounts loaded", zap.Int("count", len(tokens)), zap.String("delay_policy", string(s.cfg.DelayPolicy)))

	for {
		report, err := s.RunPass(ctx, tokens)
		if err != nil {
			return err
		}

		wait := report.Wait()
		s.logger.Info("all accounts processed, waiting "+FormatWait(wait)+" before the next pass",
			zap.String("pass", report.ID),
			zap.Duration("wait", wait),
		)

		if err := s.clock.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// RunPass processes every account once, in order, and computes the wait
// before the next pass without sleeping.
func (s *Scheduler) RunPass(ctx context.Context, tokens []domain.Token) (domain.PassReport, error) {
	report := domain.PassReport{
		ID:        s.newID(),
		StartedAt: s.clock.Now(),
		Accounts:  make([]domain.AccountReport, 0, len(tokens)),
	}
	logger := s.logger.With(zap.String("pass", report.ID))
	logger.Info(report.StartedAt.Format(passTimeLayout) + " starting pass for all accounts")

	workflow := s.workflow.withLogger(logger)

	var next time.Duration
	for _, token := range tokens {
		if token == "" {
			continue
		}

		account, err := workflow.Run(ctx, token)
		if err != nil {
			return report, err
		}
		report.Accounts = append(report.Accounts, account)

		next = aggregateDelay(s.cfg.DelayPolicy, next, account.Delay, len(report.Accounts) == 1)
	}

	report.Delay = next
	report.Jitter = s.jitter()

	if s.OnPass != nil {
		s.OnPass(report)
	}

	return report, nil
}

func aggregateDelay(policy DelayPolicy, current, delay time.Duration, first bool) time.Duration {
	if policy == DelayPolicyMin && !first && current < delay {
		return current
	}

	return delay
}

func (w *Workflow) withLogger(logger *zap.Logger) *Workflow {
	clone := *w
	clone.logger = logger
	return &clone
}
