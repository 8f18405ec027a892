package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"league-stats-service/internal/rosters/core/domain"
	"league-stats-service/internal/rosters/core/ports"
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

// tables maps a roster kind onto its header and membership tables.
type tables struct {
	roster     string
	membership string
	foreignKey string
}

var kindTables = map[domain.Kind]tables{
	domain.KindTeam: {roster: "teams", membership: "team_members", foreignKey: "team_id"},
	domain.KindCrew: {roster: "crews", membership: "crew_members", foreignKey: "crew_id"},
}

type RosterRepository struct {
	db DB
}

func NewRosterRepository(db DB) *RosterRepository {
	return &RosterRepository{db: db}
}

var _ ports.RosterReaderPort = (*RosterRepository)(nil)

func tablesFor(kind domain.Kind) (tables, error) {
	t, ok := kindTables[kind]
	if !ok {
		// usecase validation should make this unreachable
		return tables{}, fmt.Errorf("unsupported roster kind: %s", kind)
	}
	return t, nil
}

func (r *RosterRepository) GetRoster(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Roster, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	query := `
SELECT
    id,
    name,
    created_at
FROM ` + t.roster + `
WHERE id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query %s %s: %w", kind, id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrRosterNotFound
	}

	res := &domain.Roster{Kind: kind}
	if err := rows.Scan(&res.ID, &res.Name, &res.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan %s: %w", kind, err)
	}
	res.CreatedAt = res.CreatedAt.UTC()

	return res, rows.Err()
}

func (r *RosterRepository) ListMembers(ctx context.Context, kind domain.Kind, id uuid.UUID) ([]domain.Member, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	query := `
SELECT
    p.id,
    p.username,
    p.rp,
    p.win_rate,
    p.wins,
    p.losses,
    m.joined_at
FROM ` + t.membership + ` m
JOIN players p ON p.id = m.player_id
WHERE m.` + t.foreignKey + ` = $1
ORDER BY m.joined_at NULLS LAST, p.username`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query %s members %s: %w", kind, id, err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		var (
			m        domain.Member
			rp, wr   sql.NullFloat64
			wins     sql.NullInt64
			losses   sql.NullInt64
			joinedAt sql.NullTime
		)

		if err := rows.Scan(&m.PlayerID, &m.Username, &rp, &wr, &wins, &losses, &joinedAt); err != nil {
			return nil, fmt.Errorf("scan %s member: %w", kind, err)
		}

		m.RP = nullFloat(rp)
		m.WinRate = nullFloat(wr)
		m.Wins = nullInt(wins)
		m.Losses = nullInt(losses)
		m.JoinedAt = nullTime(joinedAt)

		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
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
