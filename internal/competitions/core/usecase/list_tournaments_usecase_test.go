package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-stats-service/internal/competitions/core/domain"
	"league-stats-service/internal/competitions/core/ports"
	"league-stats-service/internal/competitions/core/usecase"
	"league-stats-service/internal/stats"
)

func tournamentReader() *fakeCompetitionReader {
	return &fakeCompetitionReader{
		ListTournamentsFn: func(context.Context, ports.TournamentFilter) ([]domain.Tournament, error) {
			return sampleTournaments(), nil
		},
	}
}

func TestListTournaments_All(t *testing.T) {
	reader := tournamentReader()
	uc := usecase.NewListTournamentsUseCase(reader).WithClock(clock)

	out, err := uc.Execute(context.Background(), usecase.ListTournamentsInput{})
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Empty(t, reader.lastFilter.LeagueIDs)

	got := make([]stats.Status, 0, len(out))
	for _, v := range out {
		got = append(got, v.Status)
		assert.Equal(t, v.Status.Color(), v.Color)
	}
	assert.Equal(t, []stats.Status{
		stats.StatusCompleted,
		stats.StatusActive,
		stats.StatusUpcoming,
		stats.StatusUpcoming,
	}, got)
}

func TestListTournaments_StatusFilter(t *testing.T) {
	tests := []struct {
		status string
		want   []string
	}{
		{"active", []string{"Summer Open"}},
		{"completed", []string{"Spring Cup"}},
		{"upcoming", []string{"Autumn Classic", "Winter Invitational"}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			uc := usecase.NewListTournamentsUseCase(tournamentReader()).WithClock(clock)

			out, err := uc.Execute(context.Background(), usecase.ListTournamentsInput{Status: tt.status})
			require.NoError(t, err)

			names := make([]string, 0, len(out))
			for _, v := range out {
				names = append(names, v.Tournament.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestListTournaments_LeagueFilter(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	reader := tournamentReader()
	uc := usecase.NewListTournamentsUseCase(reader).WithClock(clock)

	_, err := uc.Execute(context.Background(), usecase.ListTournamentsInput{LeagueIDs: []string{a.String(), b.String()}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, reader.lastFilter.LeagueIDs)
}

func TestListTournaments_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      usecase.ListTournamentsInput
		wantErr error
	}{
		{"bad league id", usecase.ListTournamentsInput{LeagueIDs: []string{"nope"}}, usecase.ErrInvalidLeagueID},
		{"bad status", usecase.ListTournamentsInput{Status: "cancelled"}, usecase.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := tournamentReader()
			uc := usecase.NewListTournamentsUseCase(reader)

			_, err := uc.Execute(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, reader.calls)
		})
	}
}

func TestListTournaments_ReaderError(t *testing.T) {
	dbErr := errors.New("db error")
	reader := &fakeCompetitionReader{
		ListTournamentsFn: func(context.Context, ports.TournamentFilter) ([]domain.Tournament, error) {
			return nil, dbErr
		},
	}

	_, err := usecase.NewListTournamentsUseCase(reader).Execute(context.Background(), usecase.ListTournamentsInput{})
	assert.ErrorIs(t, err, dbErr)
}

func TestGetTournament(t *testing.T) {
	id := uuid.New()
	reader := &fakeCompetitionReader{
		GetTournamentFn: func(_ context.Context, got uuid.UUID) (*domain.Tournament, error) {
			assert.Equal(t, id, got)
			return &domain.Tournament{ID: id, Name: "Summer Open", IsActive: true, EndDate: ptr(past)}, nil
		},
	}
	uc := usecase.NewGetTournamentUseCase(reader).WithClock(clock)

	out, err := uc.Execute(context.Background(), usecase.GetTournamentInput{ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, stats.StatusActive, out.Status)
	assert.Equal(t, stats.ColorSuccess, out.Color)
}

func TestGetTournament_Errors(t *testing.T) {
	uc := usecase.NewGetTournamentUseCase(&fakeCompetitionReader{})

	_, err := uc.Execute(context.Background(), usecase.GetTournamentInput{ID: "x"})
	assert.ErrorIs(t, err, usecase.ErrInvalidTournamentID)

	_, err = uc.Execute(context.Background(), usecase.GetTournamentInput{ID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrTournamentNotFound)
}
