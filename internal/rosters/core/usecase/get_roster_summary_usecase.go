package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"league-stats-service/internal/rosters/core/domain"
	"league-stats-service/internal/rosters/core/ports"
	"league-stats-service/internal/stats"
)

var (
	ErrInvalidRosterKind = errors.New("invalid roster kind")
	ErrInvalidRosterID   = errors.New("invalid roster id")
)

type GetRosterSummaryInput struct {
	Kind string // "team" / "crew"
	ID   string
}

type GetRosterSummaryUseCase struct {
	reader ports.RosterReaderPort
	now    func() time.Time
}

func NewGetRosterSummaryUseCase(reader ports.RosterReaderPort) *GetRosterSummaryUseCase {
	return &GetRosterSummaryUseCase{reader: reader, now: time.Now}
}

// WithClock replaces the clock used for relative join times.
func (uc *GetRosterSummaryUseCase) WithClock(now func() time.Time) *GetRosterSummaryUseCase {
	uc.now = now
	return uc
}

// Execute validates the input, loads the roster header and its members in
// parallel and reduces the members into a summary.
func (uc *GetRosterSummaryUseCase) Execute(ctx context.Context, in GetRosterSummaryInput) (*domain.RosterSummary, error) {
	kind, err := domain.ParseKind(in.Kind)
	if err != nil {
		return nil, ErrInvalidRosterKind
	}

	id, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, ErrInvalidRosterID
	}

	var (
		roster  *domain.Roster
		members []domain.Member
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := uc.reader.GetRoster(gctx, kind, id)
		roster = r
		return err
	})
	g.Go(func() error {
		m, err := uc.reader.ListMembers(gctx, kind, id)
		members = m
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summarize(*roster, members, uc.now()), nil
}

func memberRP(m domain.Member) (float64, bool)     { return stats.Float(m.RP) }
func memberJoined(m domain.Member) (float64, bool) { return stats.Time(m.JoinedAt) }

func summarize(roster domain.Roster, members []domain.Member, now time.Time) *domain.RosterSummary {
	res := &domain.RosterSummary{
		Roster:         roster,
		Members:        members,
		MemberCount:    stats.Count(members),
		AverageRP:      stats.Average(members, memberRP),
		AverageWinRate: stats.AveragePercentage(members, domain.Member.WinRateValue),
		NewestJoined:   stats.Placeholder,
	}

	var topRP float64
	if top, ok := stats.MaxBy(members, memberRP); ok {
		res.TopMember = &top
		topRP, _ = memberRP(top)
	}
	if newest, ok := stats.MaxBy(members, memberJoined); ok && newest.JoinedAt != nil {
		res.NewestMember = &newest
		res.NewestJoined = stats.Relative(newest.JoinedAt, now)
	}

	n := res.MemberCount
	res.Summary.AddCount("members", n, stats.ColorInfo)
	res.Summary.AddScore("avg_rp", res.AverageRP, n, stats.ColorSuccess)
	res.Summary.AddPercentage("avg_win_rate", res.AverageWinRate, n, stats.PercentageColor(res.AverageWinRate))
	res.Summary.AddScore("top_rp", topRP, n, stats.ColorWarning)

	return res
}
