package toml

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/bnema/cgx-claimer/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

// Source reads a versioned accounts file:
//
//	version = 1
//
//	[[accounts]]
//	name = "main"
//	token = "query_id=..."
type Source struct {
	path string
}

var _ ports.SessionSource = (*Source)(nil)

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Load(ctx context.Context) ([]domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode credential file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	file.applyDefaults()

	raw := make([]string, 0, len(file.Accounts))
	for _, account := range file.Accounts {
		if account.Disabled {
			continue
		}
		raw = append(raw, account.Token)
	}

	return domain.NormalizeTokens(raw), nil
}
