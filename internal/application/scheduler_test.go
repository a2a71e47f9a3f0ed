package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/bnema/cgx-claimer/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestScheduler(t *testing.T, cfg Config) (*Scheduler, *mocks.MockSessionSource, *mocks.MockRewardsAPI, *fakeClock, *observer.ObservedLogs) {
	t.Helper()

	sessions := mocks.NewMockSessionSource(t)
	api := mocks.NewMockRewardsAPI(t)
	clock := newFakeClock(workflowNow)
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	scheduler := NewScheduler(sessions, NewWorkflow(api, clock, cfg, logger), clock, cfg, logger)
	scheduler.jitter = func() time.Duration { return 5 * time.Second }
	scheduler.newID = func() string { return "pass-1" }

	return scheduler, sessions, api, clock, logs
}

// expectPendingAccount makes token report remaining as its delay.
func expectPendingAccount(api *mocks.MockRewardsAPI, token domain.Token, remaining time.Duration) {
	api.EXPECT().Authenticate(mockAnyContext(), token).Return(domain.User{Username: string(token)}, nil)
	api.EXPECT().MiningStatus(mockAnyContext(), token).
		Return(domain.MiningSession{EndTime: domain.FromTime(workflowNow.Add(remaining))}, nil)
	api.EXPECT().Missions(mockAnyContext(), token).Return(nil, nil)
}

func TestSchedulerRunExitsWhenNoAccounts(t *testing.T) {
	scheduler, sessions, _, clock, logs := newTestScheduler(t, testConfig())

	sessions.EXPECT().Load(mockAnyContext()).Return([]domain.Token{}, nil)

	require.NoError(t, scheduler.Run(context.Background()))
	assert.Empty(t, clock.Sleeps())
	assert.Equal(t, 1, logs.FilterMessage("no accounts found").Len())
}

func TestSchedulerRunExitsWhenCredentialFileUnreadable(t *testing.T) {
	scheduler, sessions, _, _, logs := newTestScheduler(t, testConfig())

	sessions.EXPECT().Load(mockAnyContext()).Return(nil, errors.New("read credential file: no such file"))

	require.NoError(t, scheduler.Run(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("load accounts failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("no accounts found").Len())
}

func TestSchedulerPassKeepsLastAccountDelay(t *testing.T) {
	scheduler, _, api, _, _ := newTestScheduler(t, testConfig())

	expectPendingAccount(api, "first-account-token", 10*time.Minute)
	expectPendingAccount(api, "second-account-token", time.Minute)
	expectPendingAccount(api, "third-account-token", 3*time.Hour)

	report, err := scheduler.RunPass(context.Background(), []domain.Token{"first-account-token", "second-account-token", "third-account-token"})
	require.NoError(t, err)

	assert.Equal(t, "pass-1", report.ID)
	assert.Len(t, report.Accounts, 3)
	assert.Equal(t, 3*time.Hour, report.Delay)
	assert.Equal(t, 3*time.Hour+5*time.Second, report.Wait())
}

func TestSchedulerPassMinPolicyTakesSoonestTimer(t *testing.T) {
	cfg := testConfig()
	cfg.DelayPolicy = DelayPolicyMin
	scheduler, _, api, _, _ := newTestScheduler(t, cfg)

	expectPendingAccount(api, "first-account-token", 10*time.Minute)
	expectPendingAccount(api, "second-account-token", time.Minute)
	expectPendingAccount(api, "third-account-token", 3*time.Hour)

	report, err := scheduler.RunPass(context.Background(), []domain.Token{"first-account-token", "second-account-token", "third-account-token"})
	require.NoError(t, err)

	assert.Equal(t, time.Minute, report.Delay)
}

func TestSchedulerPassFailedAuthContributesSleepInterval(t *testing.T) {
	scheduler, _, api, _, _ := newTestScheduler(t, testConfig())

	expectPendingAccount(api, "first-account-token", 10*time.Minute)
	api.EXPECT().Authenticate(mockAnyContext(), domain.Token("broken-account-token")).Return(domain.User{}, domain.ErrRejected)

	report, err := scheduler.RunPass(context.Background(), []domain.Token{"first-account-token", "broken-account-token"})
	require.NoError(t, err)

	assert.Equal(t, DefaultSleepInterval, report.Delay)
}

func TestSchedulerRunSleepsBetweenPassesUntilCanceled(t *testing.T) {
	scheduler, sessions, api, clock, logs := newTestScheduler(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokens := []domain.Token{"only-account-token"}
	sessions.EXPECT().Load(mockAnyContext()).Return(tokens, nil).Once()
	api.EXPECT().Authenticate(mockAnyContext(), tokens[0]).Return(domain.User{}, nil).Times(2)
	api.EXPECT().MiningStatus(mockAnyContext(), tokens[0]).
		RunAndReturn(func(context.Context, domain.Token) (domain.MiningSession, error) {
			return domain.MiningSession{EndTime: domain.FromTime(clock.Now().Add(time.Hour))}, nil
		}).Times(2)
	api.EXPECT().Missions(mockAnyContext(), tokens[0]).Return(nil, nil).Times(2)

	var passes []domain.PassReport
	scheduler.OnPass = func(report domain.PassReport) {
		passes = append(passes, report)
		if len(passes) == 2 {
			cancel()
		}
	}

	err := scheduler.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Len(t, passes, 2)
	assert.Equal(t, time.Hour, passes[0].Delay)
	assert.Equal(t, time.Hour, passes[1].Delay)
	assert.Equal(t, workflowNow.Add(time.Hour+5*time.Second), passes[1].StartedAt)
	assert.Equal(t, []time.Duration{time.Hour + 5*time.Second}, clock.Sleeps())
	assert.Equal(t, 2, logs.FilterMessage("all accounts processed, waiting 1h0m5s before the next pass").Len())
}

func TestUniformJitterStaysWithinBounds(t *testing.T) {
	jitter := uniformJitter(DefaultJitterMin, DefaultJitterMax)

	for i := 0; i < 10_000; i++ {
		got := jitter()
		require.GreaterOrEqual(t, got, 5000*time.Millisecond)
		require.Less(t, got, 35000*time.Millisecond)
		require.Zero(t, got%time.Millisecond)
	}
}

func TestUniformJitterDegenerateRange(t *testing.T) {
	assert.Equal(t, time.Second, uniformJitter(time.Second, time.Second)())
}
