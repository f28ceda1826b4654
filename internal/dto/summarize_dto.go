package dto

type SummarizeRequest struct {
	Text string `json:"text" validate:"required"`
}

type SummarizeResponse struct {
	Summary string   `json:"summary"`
	Bullets []string `json:"bullets"`
}
