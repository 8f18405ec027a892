package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"league-stats-service/internal/competitions/core/domain"
	"league-stats-service/internal/competitions/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GetLeagueSummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetLeagueSummaryInput) (*domain.LeagueSummary, error)
}

type ListTournamentsUseCase interface {
	Execute(ctx context.Context, in usecase.ListTournamentsInput) ([]domain.TournamentView, error)
}

type GetTournamentUseCase interface {
	Execute(ctx context.Context, in usecase.GetTournamentInput) (*domain.TournamentView, error)
}

type CompetitionHandler struct {
	leagueUC GetLeagueSummaryUseCase
	listUC   ListTournamentsUseCase
	getUC    GetTournamentUseCase
	logger   *zap.Logger
}

func NewCompetitionHandler(
	leagueUC GetLeagueSummaryUseCase,
	listUC ListTournamentsUseCase,
	getUC GetTournamentUseCase,
	logger *zap.Logger,
) *CompetitionHandler {
	return &CompetitionHandler{leagueUC: leagueUC, listUC: listUC, getUC: getUC, logger: logger}
}

// GetLeagueSummary godoc
// @Summary League summary
// @Description Team count, average win percentage, leader and tournament statuses of a league
// @Tags Competitions
// @Produce json
// @Param id path string true "League ID (uuid)"
// @Success 200 {object} LeagueSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leagues/{id}/summary [get]
func (h *CompetitionHandler) GetLeagueSummary(c *fiber.Ctx) error {
	res, err := h.leagueUC.Execute(c.UserContext(), usecase.GetLeagueSummaryInput{LeagueID: c.Params("id")})
	if err != nil {
		return h.fail(c, "league summary", err)
	}

	resp := LeagueSummaryResponse{
		ID:            res.League.ID.String(),
		Name:          res.League.Name,
		TeamCount:     res.TeamCount,
		AverageWinPct: res.AverageWinPct,
		LeaderWinPct:  res.LeaderWinPct,
		StatusCounts:  make(map[string]int, len(res.StatusCounts)),
		Summary:       make([]SummaryItemResponse, 0, len(res.Summary.Items)),
		Standings:     make([]StandingResponse, 0, len(res.Standings)),
		Tournaments:   toTournamentResponses(res.Tournaments),
	}

	if res.Leader != nil {
		l := toStandingResponse(*res.Leader)
		resp.Leader = &l
	}
	for status, n := range res.StatusCounts {
		resp.StatusCounts[string(status)] = n
	}
	for _, it := range res.Summary.Items {
		resp.Summary = append(resp.Summary, SummaryItemResponse{
			Label:   it.Label,
			Value:   it.Value,
			Display: it.Display,
			Color:   string(it.Color),
		})
	}
	for _, s := range res.Standings {
		resp.Standings = append(resp.Standings, toStandingResponse(s))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ListTournaments godoc
// @Summary List tournaments
// @Description Tournaments with derived lifecycle status, optionally filtered by league and status
// @Tags Competitions
// @Produce json
// @Param league_id query string false "Comma separated league IDs"
// @Param status query string false "Status: upcoming | active | completed"
// @Success 200 {object} TournamentListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tournaments [get]
func (h *CompetitionHandler) ListTournaments(c *fiber.Ctx) error {
	var leagueIDs []string
	for _, id := range strings.Split(c.Query("league_id", ""), ",") {
		if id = strings.TrimSpace(id); id != "" {
			leagueIDs = append(leagueIDs, id)
		}
	}

	in := usecase.ListTournamentsInput{
		LeagueIDs: leagueIDs,
		Status:    c.Query("status", ""),
	}

	res, err := h.listUC.Execute(c.UserContext(), in)
	if err != nil {
		return h.fail(c, "list tournaments", err)
	}

	return c.Status(http.StatusOK).JSON(TournamentListResponse{
		Tournaments: toTournamentResponses(res),
	})
}

// GetTournament godoc
// @Summary Get tournament
// @Description Single tournament with derived lifecycle status
// @Tags Competitions
// @Produce json
// @Param id path string true "Tournament ID (uuid)"
// @Success 200 {object} TournamentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tournaments/{id} [get]
func (h *CompetitionHandler) GetTournament(c *fiber.Ctx) error {
	res, err := h.getUC.Execute(c.UserContext(), usecase.GetTournamentInput{ID: c.Params("id")})
	if err != nil {
		return h.fail(c, "get tournament", err)
	}

	return c.Status(http.StatusOK).JSON(toTournamentResponse(*res))
}

func (h *CompetitionHandler) fail(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeagueID),
		errors.Is(err, usecase.ErrInvalidTournamentID),
		errors.Is(err, usecase.ErrInvalidStatus):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrLeagueNotFound),
		errors.Is(err, domain.ErrTournamentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn(op+" timed out", zap.String("path", c.Path()))
		return c.Status(http.StatusGatewayTimeout).JSON(ErrorResponse{
			Error: "timeout",
		})
	default:
		h.logger.Error(op+" failed", zap.Error(err), zap.String("path", c.Path()))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toTournamentResponses(views []domain.TournamentView) []TournamentResponse {
	out := make([]TournamentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toTournamentResponse(v))
	}
	return out
}

func toTournamentResponse(v domain.TournamentView) TournamentResponse {
	t := v.Tournament
	resp := TournamentResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		StartDate: formatTime(t.StartDate),
		EndDate:   formatTime(t.EndDate),
		IsActive:  t.IsActive,
		Status:    string(v.Status),
		Color:     string(v.Color),
	}
	if t.LeagueID != nil {
		s := t.LeagueID.String()
		resp.LeagueID = &s
	}
	return resp
}

func toStandingResponse(s domain.Standing) StandingResponse {
	return StandingResponse{
		TeamID:   s.TeamID.String(),
		TeamName: s.TeamName,
		Wins:     s.Wins,
		Losses:   s.Losses,
		WinPct:   s.WinPct,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
