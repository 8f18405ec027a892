package fiber

type SummaryItemResponse struct {
	Label   string  `json:"label" example:"avg_win_pct"`
	Value   float64 `json:"value" example:"52.5"`
	Display string  `json:"display" example:"52.5%"`
	Color   string  `json:"color" example:"warning"`
}

type TournamentResponse struct {
	ID        string  `json:"id"`
	LeagueID  *string `json:"league_id"`
	Name      string  `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	IsActive  bool    `json:"is_active"`
	Status    string  `json:"status" example:"upcoming"`
	Color     string  `json:"color" example:"warning"`
}

type StandingResponse struct {
	TeamID   string   `json:"team_id"`
	TeamName string   `json:"team_name"`
	Wins     *int64   `json:"wins"`
	Losses   *int64   `json:"losses"`
	WinPct   *float64 `json:"win_pct"`
}

type LeagueSummaryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	TeamCount     int                   `json:"team_count"`
	AverageWinPct float64               `json:"average_win_pct"`
	Leader        *StandingResponse     `json:"leader,omitempty"`
	LeaderWinPct  float64               `json:"leader_win_pct"`
	StatusCounts  map[string]int        `json:"status_counts"`
	Summary       []SummaryItemResponse `json:"summary"`
	Standings     []StandingResponse    `json:"standings"`
	Tournaments   []TournamentResponse  `json:"tournaments"`
}

type TournamentListResponse struct {
	Tournaments []TournamentResponse `json:"tournaments"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"invalid league id"`
}
