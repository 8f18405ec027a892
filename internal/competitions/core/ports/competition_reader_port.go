package ports

import (
	"context"

	"github.com/google/uuid"

	"league-stats-service/internal/competitions/core/domain"
)

type TournamentFilter struct {
	LeagueIDs []uuid.UUID // optional, empty means every league
}

type CompetitionReaderPort interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*domain.League, error)
	ListStandings(ctx context.Context, leagueID uuid.UUID) ([]domain.Standing, error)
	ListTournaments(ctx context.Context, f TournamentFilter) ([]domain.Tournament, error)
	GetTournament(ctx context.Context, id uuid.UUID) (*domain.Tournament, error)
}
