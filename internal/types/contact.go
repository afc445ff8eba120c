package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContactSubmission is the completed contact form triple.
type ContactSubmission struct {
	Name    string `json:"name" form:"name" validate:"required,max=200"`
	Email   string `json:"email" form:"email" validate:"required,email,max=320"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

// Validate validates the ContactSubmission using the validator.
func (s *ContactSubmission) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// StoredSubmission is a ContactSubmission after it has been accepted.
type StoredSubmission struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	IPHash     string    `json:"ip_hash,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}
