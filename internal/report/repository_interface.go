package report

import (
	"context"
	"time"
)

type Repository interface {
	GetRows(ctx context.Context, from, to *time.Time) ([]Row, error)
	GetStats(ctx context.Context, now time.Time) (*Stats, error)
}
