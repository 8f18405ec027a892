package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"league-stats-service/internal/competitions/core/domain"
	"league-stats-service/internal/competitions/core/ports"
	"league-stats-service/internal/stats"
)

type ListTournamentsInput struct {
	LeagueIDs []string // optional
	Status    string   // "", "upcoming", "active", "completed"
}

type ListTournamentsUseCase struct {
	reader ports.CompetitionReaderPort
	now    func() time.Time
}

func NewListTournamentsUseCase(reader ports.CompetitionReaderPort) *ListTournamentsUseCase {
	return &ListTournamentsUseCase{reader: reader, now: time.Now}
}

func (uc *ListTournamentsUseCase) WithClock(now func() time.Time) *ListTournamentsUseCase {
	uc.now = now
	return uc
}

// Execute lists tournaments with their status. Status is derived here, not
// stored, so the status filter runs after classification.
func (uc *ListTournamentsUseCase) Execute(ctx context.Context, in ListTournamentsInput) ([]domain.TournamentView, error) {
	var filter ports.TournamentFilter
	for _, raw := range in.LeagueIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrInvalidLeagueID
		}
		filter.LeagueIDs = append(filter.LeagueIDs, id)
	}

	var want stats.Status
	if in.Status != "" {
		st, err := stats.ParseStatus(in.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		want = st
	}

	tournaments, err := uc.reader.ListTournaments(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := viewsOf(tournaments, uc.now())
	if want == "" {
		return views, nil
	}

	filtered := make([]domain.TournamentView, 0, len(views))
	for _, v := range views {
		if v.Status == want {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}
