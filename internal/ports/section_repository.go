package ports

import (
	"context"

	"github.com/bnema/evaldash/internal/domain"
)

type SectionRepository interface {
	Load(ctx context.Context) (domain.Dashboard, error)
	Save(ctx context.Context, dashboard domain.Dashboard) error
}
