package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"league-stats-service/internal/stats"
)

var (
	ErrLeagueNotFound     = errors.New("league not found")
	ErrTournamentNotFound = errors.New("tournament not found")
)

type League struct {
	ID   uuid.UUID
	Name string
}

// Standing is one team's record inside a league.
type Standing struct {
	TeamID   uuid.UUID
	TeamName string
	Wins     *int64
	Losses   *int64
	WinPct   *float64 // 0-1 or 0-100
}

// WinPctValue returns the stored win percentage, or wins/(wins+losses) as a
// fraction when the column is null.
func (s Standing) WinPctValue() (float64, bool) {
	if s.WinPct != nil {
		return *s.WinPct, true
	}
	if s.Wins == nil || s.Losses == nil {
		return 0, false
	}
	played := *s.Wins + *s.Losses
	if played == 0 {
		return 0, false
	}
	return float64(*s.Wins) / float64(played), true
}

type Tournament struct {
	ID        uuid.UUID
	LeagueID  *uuid.UUID
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	IsActive  bool
}

// TournamentView is a tournament with its derived lifecycle status.
type TournamentView struct {
	Tournament Tournament
	Status     stats.Status
	Color      stats.Color
}

type LeagueSummary struct {
	League        League
	Standings     []Standing
	TeamCount     int
	AverageWinPct float64 // 0-100
	Leader        *Standing
	LeaderWinPct  float64 // 0-100
	Tournaments   []TournamentView
	StatusCounts  map[stats.Status]int
	Summary       stats.Summary
}
