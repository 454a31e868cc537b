package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// ConflictResponse carries a machine-readable reason code so clients can
// render a specific message for capacity and duplicate failures.
type ConflictResponse struct {
	Error string `json:"error" example:"no spots available"`
	Code  string `json:"code" example:"slot_unavailable"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
