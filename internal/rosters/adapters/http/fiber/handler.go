package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"league-stats-service/internal/rosters/core/domain"
	"league-stats-service/internal/rosters/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GetRosterSummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetRosterSummaryInput) (*domain.RosterSummary, error)
}

type RosterHandler struct {
	uc     GetRosterSummaryUseCase
	logger *zap.Logger
}

func NewRosterHandler(uc GetRosterSummaryUseCase, logger *zap.Logger) *RosterHandler {
	return &RosterHandler{uc: uc, logger: logger}
}

// GetTeamSummary godoc
// @Summary Team roster summary
// @Description Member count, average RP, average win rate and top/newest member of a team
// @Tags Rosters
// @Produce json
// @Param id path string true "Team ID (uuid)"
// @Success 200 {object} RosterSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /teams/{id}/summary [get]
func (h *RosterHandler) GetTeamSummary(c *fiber.Ctx) error {
	return h.summary(c, domain.KindTeam)
}

// GetCrewSummary godoc
// @Summary Crew roster summary
// @Description Member count, average RP, average win rate and top/newest member of a crew
// @Tags Rosters
// @Produce json
// @Param id path string true "Crew ID (uuid)"
// @Success 200 {object} RosterSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /crews/{id}/summary [get]
func (h *RosterHandler) GetCrewSummary(c *fiber.Ctx) error {
	return h.summary(c, domain.KindCrew)
}

func (h *RosterHandler) summary(c *fiber.Ctx, kind domain.Kind) error {
	in := usecase.GetRosterSummaryInput{
		Kind: string(kind),
		ID:   c.Params("id"),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRosterKind),
			errors.Is(err, usecase.ErrInvalidRosterID):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_request",
				Message: err.Error(),
			})
		case errors.Is(err, domain.ErrRosterNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		case errors.Is(err, context.DeadlineExceeded):
			h.logger.Warn("roster summary timed out", zap.String("kind", string(kind)), zap.String("id", in.ID))
			return c.Status(http.StatusGatewayTimeout).JSON(ErrorResponse{
				Error: "timeout",
			})
		default:
			h.logger.Error("roster summary failed", zap.Error(err), zap.String("kind", string(kind)), zap.String("id", in.ID))
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toRosterSummaryResponse(res))
}

func toRosterSummaryResponse(res *domain.RosterSummary) RosterSummaryResponse {
	resp := RosterSummaryResponse{
		Kind:           string(res.Roster.Kind),
		ID:             res.Roster.ID.String(),
		Name:           res.Roster.Name,
		CreatedAt:      res.Roster.CreatedAt.UTC().Format(time.RFC3339),
		MemberCount:    res.MemberCount,
		AverageRP:      res.AverageRP,
		AverageWinRate: res.AverageWinRate,
		NewestJoined:   res.NewestJoined,
		Summary:        make([]SummaryItemResponse, 0, len(res.Summary.Items)),
		Members:        make([]MemberResponse, 0, len(res.Members)),
	}

	if res.TopMember != nil {
		m := toMemberResponse(*res.TopMember)
		resp.TopMember = &m
	}
	if res.NewestMember != nil {
		m := toMemberResponse(*res.NewestMember)
		resp.NewestMember = &m
	}

	for _, it := range res.Summary.Items {
		resp.Summary = append(resp.Summary, SummaryItemResponse{
			Label:   it.Label,
			Value:   it.Value,
			Display: it.Display,
			Color:   string(it.Color),
		})
	}
	for _, m := range res.Members {
		resp.Members = append(resp.Members, toMemberResponse(m))
	}

	return resp
}

func toMemberResponse(m domain.Member) MemberResponse {
	resp := MemberResponse{
		PlayerID: m.PlayerID.String(),
		Username: m.Username,
		RP:       m.RP,
		WinRate:  m.WinRate,
		Wins:     m.Wins,
		Losses:   m.Losses,
	}
	if m.JoinedAt != nil {
		s := m.JoinedAt.UTC().Format(time.RFC3339)
		resp.JoinedAt = &s
	}
	return resp
}
