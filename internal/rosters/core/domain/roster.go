package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"league-stats-service/internal/stats"
)

var ErrRosterNotFound = errors.New("roster not found")

// Kind selects which membership tables a roster lives in.
type Kind string

const (
	KindTeam Kind = "team"
	KindCrew Kind = "crew"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindTeam, KindCrew:
		return k, nil
	default:
		return "", fmt.Errorf("unknown roster kind %q", s)
	}
}

type Roster struct {
	Kind      Kind
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Member is a player row joined with its membership row. Nullable columns stay
// nil when the hosted table has no value.
type Member struct {
	PlayerID uuid.UUID
	Username string
	RP       *float64
	WinRate  *float64 // 0-1 or 0-100, see stats.NormalizedPercentage
	Wins     *int64
	Losses   *int64
	JoinedAt *time.Time
}

// WinRateValue prefers the stored win rate and falls back to wins/(wins+losses)
// as a fraction.
func (m Member) WinRateValue() (float64, bool) {
	if m.WinRate != nil {
		return *m.WinRate, true
	}
	if m.Wins == nil || m.Losses == nil {
		return 0, false
	}
	played := *m.Wins + *m.Losses
	if played == 0 {
		return 0, false
	}
	return float64(*m.Wins) / float64(played), true
}

type RosterSummary struct {
	Roster         Roster
	Members        []Member
	MemberCount    int
	AverageRP      float64
	AverageWinRate float64 // 0-100
	TopMember      *Member
	NewestMember   *Member
	NewestJoined   string // "3 days ago"
	Summary        stats.Summary
}
