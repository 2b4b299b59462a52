package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type SlotsResponse struct {
	Date    string   `json:"date" example:"2025-06-10"`
	Slots   []string `json:"slots"`
	Warning string   `json:"warning,omitempty" example:"past date requested, showing today"`
}
