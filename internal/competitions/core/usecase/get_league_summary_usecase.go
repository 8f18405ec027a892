package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"league-stats-service/internal/competitions/core/domain"
	"league-stats-service/internal/competitions/core/ports"
	"league-stats-service/internal/stats"
)

type GetLeagueSummaryInput struct {
	LeagueID string
}

type GetLeagueSummaryUseCase struct {
	reader ports.CompetitionReaderPort
	now    func() time.Time
}

func NewGetLeagueSummaryUseCase(reader ports.CompetitionReaderPort) *GetLeagueSummaryUseCase {
	return &GetLeagueSummaryUseCase{reader: reader, now: time.Now}
}

func (uc *GetLeagueSummaryUseCase) WithClock(now func() time.Time) *GetLeagueSummaryUseCase {
	uc.now = now
	return uc
}

// Execute loads the league, its standings and its tournaments in parallel.
func (uc *GetLeagueSummaryUseCase) Execute(ctx context.Context, in GetLeagueSummaryInput) (*domain.LeagueSummary, error) {
	id, err := uuid.Parse(in.LeagueID)
	if err != nil {
		return nil, ErrInvalidLeagueID
	}

	var (
		league      *domain.League
		standings   []domain.Standing
		tournaments []domain.Tournament
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := uc.reader.GetLeague(gctx, id)
		league = l
		return err
	})
	g.Go(func() error {
		s, err := uc.reader.ListStandings(gctx, id)
		standings = s
		return err
	})
	g.Go(func() error {
		t, err := uc.reader.ListTournaments(gctx, ports.TournamentFilter{LeagueIDs: []uuid.UUID{id}})
		tournaments = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &domain.LeagueSummary{
		League:        *league,
		Standings:     standings,
		TeamCount:     stats.Count(standings),
		AverageWinPct: stats.AveragePercentage(standings, domain.Standing.WinPctValue),
		Tournaments:   viewsOf(tournaments, uc.now()),
		StatusCounts:  make(map[stats.Status]int, len(stats.Statuses)),
	}

	winPct := stats.Percentage[domain.Standing](domain.Standing.WinPctValue)
	if leader, ok := stats.MaxBy(standings, winPct); ok {
		res.Leader = &leader
		res.LeaderWinPct, _ = winPct(leader)
	}

	for _, s := range stats.Statuses {
		res.StatusCounts[s] = 0
	}
	for _, v := range res.Tournaments {
		res.StatusCounts[v.Status]++
	}

	n := res.TeamCount
	res.Summary.AddCount("teams", n, stats.ColorInfo)
	res.Summary.AddPercentage("avg_win_pct", res.AverageWinPct, n, stats.PercentageColor(res.AverageWinPct))
	res.Summary.AddPercentage("leader_win_pct", res.LeaderWinPct, n, stats.ColorSuccess)
	res.Summary.AddCount("active_tournaments", res.StatusCounts[stats.StatusActive], stats.StatusActive.Color())

	return res, nil
}
