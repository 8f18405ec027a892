package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"league-stats-service/internal/competitions/core/domain"
	"league-stats-service/internal/competitions/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type CompetitionRepository struct {
	db DB
}

func NewCompetitionRepository(db DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

var _ ports.CompetitionReaderPort = (*CompetitionRepository)(nil)

const selectTournamentSQL = `
SELECT
    id,
    league_id,
    name,
    start_date,
    end_date,
    is_active
FROM tournaments`

func (r *CompetitionRepository) GetLeague(ctx context.Context, id uuid.UUID) (*domain.League, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM leagues WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("query league %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrLeagueNotFound
	}

	var l domain.League
	if err := rows.Scan(&l.ID, &l.Name); err != nil {
		return nil, fmt.Errorf("scan league: %w", err)
	}
	return &l, rows.Err()
}

func (r *CompetitionRepository) ListStandings(ctx context.Context, leagueID uuid.UUID) ([]domain.Standing, error) {
	query := `
SELECT
    s.team_id,
    t.name,
    s.wins,
    s.losses,
    s.win_pct
FROM league_standings s
JOIN teams t ON t.id = s.team_id
WHERE s.league_id = $1
ORDER BY t.name`

	rows, err := r.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("query standings %s: %w", leagueID, err)
	}
	defer rows.Close()

	standings := []domain.Standing{}
	for rows.Next() {
		var (
			s            domain.Standing
			wins, losses sql.NullInt64
			winPct       sql.NullFloat64
		)
		if err := rows.Scan(&s.TeamID, &s.TeamName, &wins, &losses, &winPct); err != nil {
			return nil, fmt.Errorf("scan standing: %w", err)
		}
		s.Wins = nullInt(wins)
		s.Losses = nullInt(losses)
		s.WinPct = nullFloat(winPct)

		standings = append(standings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return standings, nil
}

func (r *CompetitionRepository) ListTournaments(ctx context.Context, f ports.TournamentFilter) ([]domain.Tournament, error) {
	query := selectTournamentSQL
	var args []any

	if len(f.LeagueIDs) > 0 {
		ids := make([]string, 0, len(f.LeagueIDs))
		for _, id := range f.LeagueIDs {
			ids = append(ids, id.String())
		}
		query += "\nWHERE league_id = ANY($1::uuid[])"
		args = append(args, pq.Array(ids))
	}
	query += "\nORDER BY start_date NULLS LAST, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := []domain.Tournament{}
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tournaments, nil
}

func (r *CompetitionRepository) GetTournament(ctx context.Context, id uuid.UUID) (*domain.Tournament, error) {
	rows, err := r.db.QueryContext(ctx, selectTournamentSQL+"\nWHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("query tournament %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrTournamentNotFound
	}

	t, err := scanTournament(rows)
	if err != nil {
		return nil, err
	}
	return &t, rows.Err()
}

func scanTournament(rows RowScanner) (domain.Tournament, error) {
	var (
		t          domain.Tournament
		leagueID   uuid.NullUUID
		start, end sql.NullTime
	)
	if err := rows.Scan(&t.ID, &leagueID, &t.Name, &start, &end, &t.IsActive); err != nil {
		return domain.Tournament{}, fmt.Errorf("scan tournament: %w", err)
	}
	if leagueID.Valid {
		t.LeagueID = &leagueID.UUID
	}
	t.StartDate = nullTime(start)
	t.EndDate = nullTime(end)
	return t, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time.UTC()
	return &t
}
