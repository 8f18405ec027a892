package usecase

import (
	"errors"
	"time"

	"league-stats-service/internal/competitions/core/domain"
	"league-stats-service/internal/stats"
)

var (
	ErrInvalidLeagueID     = errors.New("invalid league id")
	ErrInvalidTournamentID = errors.New("invalid tournament id")
	ErrInvalidStatus       = errors.New("invalid tournament status")
)

func viewOf(t domain.Tournament, now time.Time) domain.TournamentView {
	status := stats.Classify(t.IsActive, t.StartDate, t.EndDate, now)
	return domain.TournamentView{
		Tournament: t,
		Status:     status,
		Color:      status.Color(),
	}
}

func viewsOf(ts []domain.Tournament, now time.Time) []domain.TournamentView {
	views := make([]domain.TournamentView, 0, len(ts))
	for _, t := range ts {
		views = append(views, viewOf(t, now))
	}
	return views
}
