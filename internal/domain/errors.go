package domain

import "errors"

var (
	ErrRejected     = errors.New("request rejected by server")
	ErrNoAccounts   = errors.New("no accounts found")
	ErrNoSession    = errors.New("mining session missing in response")
	ErrNoMissions   = errors.New("no missions in response")
	ErrUnknownDelay = errors.New("unknown delay policy")
)
