package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/bnema/cgx-claimer/internal/ports"
)

const (
	pathAuth         = "/api/auth"
	pathMiningStatus = "/api/mining/status"
	pathMiningClaim  = "/api/mining/claim"
	pathMiningStart  = "/api/mining/start"
	pathMissions     = "/api/mission"
	pathDailyClaim   = "/api/mission/daily/claim"
)

// RewardsAdapter maps the mining/mission endpoints onto ports.RewardsAPI.
type RewardsAdapter struct {
	Client Client
}

var _ ports.RewardsAPI = RewardsAdapter{}

type authResponse struct {
	User *domain.User `json:"user"`
}

type statusResponse struct {
	MiningSession *domain.MiningSession `json:"miningSession"`
}

type startResponse struct {
	Success       bool                  `json:"success"`
	MiningSession *domain.MiningSession `json:"miningSession"`
}

type missionsResponse struct {
	Success  bool             `json:"success"`
	Missions []domain.Mission `json:"missions"`
}

type dailyClaimRequest struct {
	Day int `json:"day"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func authHeader(token domain.Token) http.Header {
	headers := http.Header{}
	headers.Set("Authorization", "tma "+token.String())
	return headers
}

func (a RewardsAdapter) Authenticate(ctx context.Context, token domain.Token) (domain.User, error) {
	var payload authResponse
	if err := a.Client.Do(ctx, http.MethodPost, pathAuth, authHeader(token), struct{}{}, &payload); err != nil {
		return domain.User{}, fmt.Errorf("authenticate: %w", err)
	}
	if payload.User == nil {
		return domain.User{}, nil
	}

	return *payload.User, nil
}

// MiningStatus returns the zero session when the server reports none.
func (a RewardsAdapter) MiningStatus(ctx context.Context, token domain.Token) (domain.MiningSession, error) {
	var payload statusResponse
	if err := a.Client.Do(ctx, http.MethodGet, pathMiningStatus, authHeader(token), nil, &payload); err != nil {
		return domain.MiningSession{}, fmt.Errorf("mining status: %w", err)
	}
	if payload.MiningSession == nil {
		return domain.MiningSession{}, nil
	}

	return *payload.MiningSession, nil
}

func (a RewardsAdapter) ClaimMining(ctx context.Context, token domain.Token) (domain.ClaimResult, error) {
	var payload domain.ClaimResult
	if err := a.Client.Do(ctx, http.MethodGet, pathMiningClaim, authHeader(token), nil, &payload); err != nil {
		return domain.ClaimResult{}, fmt.Errorf("claim mining: %w", err)
	}
	if !payload.Success {
		return payload, fmt.Errorf("claim mining: %w", domain.ErrRejected)
	}

	return payload, nil
}

func (a RewardsAdapter) StartMining(ctx context.Context, token domain.Token) (domain.MiningSession, error) {
	var payload startResponse
	if err := a.Client.Do(ctx, http.MethodPost, pathMiningStart, authHeader(token), nil, &payload); err != nil {
		return domain.MiningSession{}, fmt.Errorf("start mining: %w", err)
	}
	if !payload.Success {
		return domain.MiningSession{}, fmt.Errorf("start mining: %w", domain.ErrRejected)
	}
	if payload.MiningSession == nil {
		return domain.MiningSession{}, fmt.Errorf("start mining: %w", domain.ErrNoSession)
	}

	return *payload.MiningSession, nil
}

func (a RewardsAdapter) Missions(ctx context.Context, token domain.Token) ([]domain.Mission, error) {
	var payload missionsResponse
	if err := a.Client.Do(ctx, http.MethodGet, pathMissions, authHeader(token), nil, &payload); err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	if !payload.Success {
		return nil, fmt.Errorf("list missions: %w", domain.ErrRejected)
	}

	return payload.Missions, nil
}

func (a RewardsAdapter) ClaimDailyReward(ctx context.Context, token domain.Token, day int) error {
	var payload successResponse
	if err := a.Client.Do(ctx, http.MethodPost, pathDailyClaim, authHeader(token), dailyClaimRequest{Day: day}, &payload); err != nil {
		return fmt.Errorf("claim daily reward for day %d: %w", day, err)
	}
	if !payload.Success {
		return fmt.Errorf("claim daily reward for day %d: %w", day, domain.ErrRejected)
	}

	return nil
}
