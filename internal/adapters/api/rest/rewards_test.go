package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken domain.Token = "query_id=AAE&hash=abc"

func newTestAdapter(t *testing.T, register func(r *mux.Router)) RewardsAdapter {
	t.Helper()

	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "tma "+testToken.String(), r.Header.Get("Authorization"))
			assert.Equal(t, "application/json, text/plain, */*", r.Header.Get("Accept"))
			assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))
			assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
			next.ServeHTTP(w, r)
		})
	})
	register(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return RewardsAdapter{Client: Client{BaseURL: server.URL, HTTPClient: server.Client()}}
}

func TestAuthenticateSendsEmptyObjectAndDecodesUser(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathAuth, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Empty(t, body)
			_, _ = fmt.Fprint(w, `{"user":{"username":"chillguy","solBalance":0.25,"cgxmasBalance":"1500.5"}}`)
		}).Methods(http.MethodPost)
	})

	user, err := adapter.Authenticate(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, "chillguy", user.Username)
	assert.True(t, decimal.RequireFromString("0.25").Equal(user.SolBalance))
	assert.True(t, decimal.RequireFromString("1500.5").Equal(user.CgxmasBalance))
}

func TestAuthenticateReportsStatusError(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathAuth, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = fmt.Fprint(w, `{"message":"invalid init data"}`)
		}).Methods(http.MethodPost)
	})

	_, err := adapter.Authenticate(context.Background(), testToken)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "invalid init data")
}

func TestMiningStatusDecodesSession(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathMiningStatus, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, `{"miningSession":{"endTime":1735000000000,"duration":21600000}}`)
		}).Methods(http.MethodGet)
	})

	session, err := adapter.MiningStatus(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, domain.EpochMillis(1_735_000_000_000), session.EndTime)
	assert.Equal(t, 6*time.Hour, session.Duration.Duration())
}

func TestMiningStatusWithoutSessionIsReady(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathMiningStatus, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, `{"miningSession":null}`)
		}).Methods(http.MethodGet)
	})

	session, err := adapter.MiningStatus(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), session.Remaining(time.Now()))
}

func TestClaimMiningRejectedWhenSuccessFalse(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathMiningClaim, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, `{"success":false}`)
		}).Methods(http.MethodGet)
	})

	_, err := adapter.ClaimMining(context.Background(), testToken)
	require.ErrorIs(t, err, domain.ErrRejected)
}

func TestClaimMiningReturnsTokensEarned(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathMiningClaim, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, `{"success":true,"tokensEarned":42.75}`)
		}).Methods(http.MethodGet)
	})

	result, err := adapter.ClaimMining(context.Background(), testToken)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("42.75").Equal(result.TokensEarned))
}

func TestStartMiningReturnsNewSession(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathMiningStart, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, `{"success":true,"miningSession":{"duration":14400000}}`)
		}).Methods(http.MethodPost)
	})

	session, err := adapter.StartMining(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, session.Duration.Duration())
}

func TestStartMiningWithoutSessionFails(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathMiningStart, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, `{"success":true}`)
		}).Methods(http.MethodPost)
	})

	_, err := adapter.StartMining(context.Background(), testToken)
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestMissionsDecodesDailyRewards(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathMissions, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, `{"success":true,"missions":[{"currentDay":1,"nextClaimAt":"2024-12-24T00:26:40Z","dailyRewards":[{"day":1,"completed":true},{"day":2,"completed":false}]}]}`)
		}).Methods(http.MethodGet)
	})

	missions, err := adapter.Missions(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, missions, 1)
	assert.Equal(t, 1, missions[0].CurrentDay)
	assert.Equal(t, domain.EpochMillis(1_735_000_000_000), missions[0].NextClaimAt)
	assert.Equal(t, []domain.DailyReward{{Day: 1, Completed: true}, {Day: 2, Completed: false}}, missions[0].DailyRewards)
}

func TestClaimDailyRewardSendsDay(t *testing.T) {
	t.Parallel()

	adapter := newTestAdapter(t, func(r *mux.Router) {
		r.HandleFunc(pathDailyClaim, func(w http.ResponseWriter, r *http.Request) {
			var body dailyClaimRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 2, body.Day)
			_, _ = fmt.Fprint(w, `{"success":true}`)
		}).Methods(http.MethodPost)
	})

	require.NoError(t, adapter.ClaimDailyReward(context.Background(), testToken, 2))
}

func TestClientReportsTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	adapter := RewardsAdapter{Client: Client{BaseURL: baseURL}}
	_, err := adapter.MiningStatus(context.Background(), testToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "perform GET /api/mining/status")
}

func TestClientTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = fmt.Fprint(w, `{}`)
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 20 * time.Millisecond}
	err := client.Do(context.Background(), http.MethodGet, pathMissions, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestValidateBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "https", raw: "https://api.chillguyxmas.com"},
		{name: "empty", raw: "", wantErr: "api base url is required"},
		{name: "bad scheme", raw: "ftp://example.com", wantErr: "must use http or https"},
		{name: "missing host", raw: "https://", wantErr: "host is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBaseURL(tc.raw)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
