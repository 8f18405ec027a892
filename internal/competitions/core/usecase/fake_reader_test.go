package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"league-stats-service/internal/competitions/core/domain"
	"league-stats-service/internal/competitions/core/ports"
)

// fakeCompetitionReader implements ports.CompetitionReaderPort for tests.
type fakeCompetitionReader struct {
	GetLeagueFn       func(ctx context.Context, id uuid.UUID) (*domain.League, error)
	ListStandingsFn   func(ctx context.Context, leagueID uuid.UUID) ([]domain.Standing, error)
	ListTournamentsFn func(ctx context.Context, f ports.TournamentFilter) ([]domain.Tournament, error)
	GetTournamentFn   func(ctx context.Context, id uuid.UUID) (*domain.Tournament, error)

	mu         sync.Mutex
	calls      int
	lastFilter ports.TournamentFilter
}

func (f *fakeCompetitionReader) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeCompetitionReader) GetLeague(ctx context.Context, id uuid.UUID) (*domain.League, error) {
	f.hit()
	if f.GetLeagueFn != nil {
		return f.GetLeagueFn(ctx, id)
	}
	return &domain.League{ID: id, Name: "Premier"}, nil
}

func (f *fakeCompetitionReader) ListStandings(ctx context.Context, leagueID uuid.UUID) ([]domain.Standing, error) {
	f.hit()
	if f.ListStandingsFn != nil {
		return f.ListStandingsFn(ctx, leagueID)
	}
	return nil, nil
}

func (f *fakeCompetitionReader) ListTournaments(ctx context.Context, flt ports.TournamentFilter) ([]domain.Tournament, error) {
	f.hit()
	f.mu.Lock()
	f.lastFilter = flt
	f.mu.Unlock()
	if f.ListTournamentsFn != nil {
		return f.ListTournamentsFn(ctx, flt)
	}
	return nil, nil
}

func (f *fakeCompetitionReader) GetTournament(ctx context.Context, id uuid.UUID) (*domain.Tournament, error) {
	f.hit()
	if f.GetTournamentFn != nil {
		return f.GetTournamentFn(ctx, id)
	}
	return nil, domain.ErrTournamentNotFound
}

func ptr[T any](v T) *T { return &v }

var (
	now    = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clock  = func() time.Time { return now }
	past   = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	future = now.AddDate(0, 1, 0)
)

// one tournament per status, in repository order
func sampleTournaments() []domain.Tournament {
	return []domain.Tournament{
		{ID: uuid.New(), Name: "Spring Cup", EndDate: ptr(past)},
		{ID: uuid.New(), Name: "Summer Open", IsActive: true, EndDate: ptr(past)},
		{ID: uuid.New(), Name: "Autumn Classic", StartDate: ptr(future), EndDate: ptr(future.AddDate(0, 0, 30))},
		{ID: uuid.New(), Name: "Winter Invitational"},
	}
}
