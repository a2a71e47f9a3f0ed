package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/cgx-claimer/internal/domain"
	"github.com/bnema/cgx-claimer/internal/ports"
	"gopkg.in/yaml.v3"
)

type fileSchema struct {
	Tokens []string `yaml:"tokens"`
}

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
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode credential file: %w", err)
	}

	return domain.NormalizeTokens(file.Tokens), nil
}
