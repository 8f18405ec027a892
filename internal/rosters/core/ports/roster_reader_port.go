package ports

import (
	"context"

	"github.com/google/uuid"

	"league-stats-service/internal/rosters/core/domain"
)

type RosterReaderPort interface {
	// GetRoster returns domain.ErrRosterNotFound when no row matches.
	GetRoster(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Roster, error)
	ListMembers(ctx context.Context, kind domain.Kind, id uuid.UUID) ([]domain.Member, error)
}
