package ports

import (
	"context"

	"github.com/bnema/cgx-claimer/internal/domain"
)

type SessionSource interface {
	Load(ctx context.Context) ([]domain.Token, error)
}
