package request_verification

// RequestVerificationRequest HTTP request model
type RequestVerificationRequest struct {
	Subject string `json:"subject"` // телефон или email клиента
}

// RequestVerificationResponse HTTP response model
type RequestVerificationResponse struct {
	Status string `json:"status"`
}
