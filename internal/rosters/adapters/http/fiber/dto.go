package fiber

type SummaryItemResponse struct {
	Label   string  `json:"label" example:"avg_rp"`
	Value   float64 `json:"value" example:"1432.5"`
	Display string  `json:"display" example:"1,432.5"`
	Color   string  `json:"color" example:"success"`
}

type MemberResponse struct {
	PlayerID string   `json:"player_id"`
	Username string   `json:"username"`
	RP       *float64 `json:"rp"`
	WinRate  *float64 `json:"win_rate"`
	Wins     *int64   `json:"wins"`
	Losses   *int64   `json:"losses"`
	JoinedAt *string  `json:"joined_at"`
}

type RosterSummaryResponse struct {
	Kind           string                `json:"kind" example:"team"`
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	CreatedAt      string                `json:"created_at"`
	MemberCount    int                   `json:"member_count"`
	AverageRP      float64               `json:"average_rp"`
	AverageWinRate float64               `json:"average_win_rate"`
	TopMember      *MemberResponse       `json:"top_member,omitempty"`
	NewestMember   *MemberResponse       `json:"newest_member,omitempty"`
	NewestJoined   string                `json:"newest_joined" example:"3 days ago"`
	Summary        []SummaryItemResponse `json:"summary"`
	Members        []MemberResponse      `json:"members"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"invalid roster id"`
}
