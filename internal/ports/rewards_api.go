package ports

import (
	"context"

	"github.com/bnema/cgx-claimer/internal/domain"
)

// RewardsAPI is the remote mining/mission service. Every method is a single
// attempt; a server-side success:false is reported as domain.ErrRejected.
type RewardsAPI interface {
	Authenticate(ctx context.Context, token domain.Token) (domain.User, error)
	MiningStatus(ctx context.Context, token domain.Token) (domain.MiningSession, error)
	ClaimMining(ctx context.Context, token domain.Token) (domain.ClaimResult, error)
	StartMining(ctx context.Context, token domain.Token) (domain.MiningSession, error)
	Missions(ctx context.Context, token domain.Token) ([]domain.Mission, error)
	ClaimDailyReward(ctx context.Context, token domain.Token, day int) error
}
