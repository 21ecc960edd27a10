package confirm_verification

// ConfirmVerificationRequest HTTP request model
type ConfirmVerificationRequest struct {
	Subject string `json:"subject"` // телефон или email клиента
	Code    string `json:"code"`
}

// ConfirmVerificationResponse HTTP response model
type ConfirmVerificationResponse struct {
	Verified bool `json:"verified"`
}
