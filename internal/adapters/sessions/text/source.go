package text

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/bnema/cgx-claimer/internal/ports"
)

// Source reads one token per line. Blank lines are ignored.
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

	return Parse(string(data)), nil
}

func Parse(data string) []domain.Token {
	return domain.NormalizeTokens(strings.Split(data, "\n"))
}
