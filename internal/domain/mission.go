package domain

import "time"

type DailyReward struct {
	Day       int  `json:"day"`
	Completed bool `json:"completed"`
}

type Mission struct {
	CurrentDay   int           `json:"currentDay"`
	NextClaimAt  EpochMillis   `json:"nextClaimAt"`
	DailyRewards []DailyReward `json:"dailyRewards"`
}

// ClaimableDay returns the single reward that may be claimed at now. Rewards
// are strictly sequential, so only the entry for CurrentDay+1 qualifies, and
// only once NextClaimAt has passed.
func (m Mission) ClaimableDay(now time.Time) (DailyReward, bool) {
	if now.UnixMilli() <= int64(m.NextClaimAt) {
		return DailyReward{}, false
	}

	for _, reward := range m.DailyRewards {
		if reward.Day == m.CurrentDay+1 && !reward.Completed {
			return reward, true
		}
	}

	return DailyReward{}, false
}
