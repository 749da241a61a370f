package models

// ContactSubmission is a flat contact-form payload. Name, email and message
// are required; phone and subject are optional.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
