package domain

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Token is the opaque bearer credential of one account, usually Telegram
// init data.
type Token string

func (t Token) String() string {
	return string(t)
}

// Redacted keeps the first and last four characters.
func (t Token) Redacted() string {
	raw := strings.TrimSpace(string(t))
	if len(raw) <= 12 {
		return strings.Repeat("*", len(raw))
	}

	return raw[:4] + "..." + raw[len(raw)-4:]
}

// Label names the account in logs and reports. It prefers the Telegram
// username embedded in init data and falls back to the redacted token.
func (t Token) Label() string {
	if username := telegramUsername(string(t)); username != "" {
		return username
	}

	return t.Redacted()
}

func telegramUsername(initData string) string {
	values, err := url.ParseQuery(strings.TrimSpace(initData))
	if err != nil {
		return ""
	}

	rawUser := values.Get("user")
	if rawUser == "" {
		return ""
	}

	var user struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return ""
	}

	return strings.TrimSpace(user.Username)
}

// NormalizeTokens trims every entry and drops blank ones, keeping order.
func NormalizeTokens(raw []string) []Token {
	tokens := make([]Token, 0, len(raw))
	for _, entry := range raw {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		tokens = append(tokens, Token(trimmed))
	}

	return tokens
}
