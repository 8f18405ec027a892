package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"league-stats-service/internal/competitions/core/domain"
	"league-stats-service/internal/competitions/core/ports"
)

type GetTournamentInput struct {
	ID string
}

type GetTournamentUseCase struct {
	reader ports.CompetitionReaderPort
	now    func() time.Time
}

func NewGetTournamentUseCase(reader ports.CompetitionReaderPort) *GetTournamentUseCase {
	return &GetTournamentUseCase{reader: reader, now: time.Now}
}

func (uc *GetTournamentUseCase) WithClock(now func() time.Time) *GetTournamentUseCase {
	uc.now = now
	return uc
}

func (uc *GetTournamentUseCase) Execute(ctx context.Context, in GetTournamentInput) (*domain.TournamentView, error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return nil, ErrInvalidTournamentID
	}

	t, err := uc.reader.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	v := viewOf(*t, uc.now())
	return &v, nil
}
