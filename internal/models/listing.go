package models

import "time"

// PropertyDraft is the accumulated listing-intake record. It is created empty
// when a wizard session starts, replaced wholesale by a valid details submit,
// and read-only afterwards.
type PropertyDraft struct {
	PropertyType string `json:"property_type"`
	Address      string `json:"address"`
	Bedrooms     int    `json:"bedrooms"`
	Bathrooms    int    `json:"bathrooms"`
	Parking      int    `json:"parking"`
	Price        string `json:"price"`
	Description  string `json:"description"`
	Features     string `json:"features,omitempty"`
}

// PropertyTypes lists the accepted values for PropertyDraft.PropertyType.
var PropertyTypes = []string{"house", "apartment", "townhouse", "land", "commercial"}

// ListingSubmission is the payload handed to the external submission service
// when a wizard session is submitted.
type ListingSubmission struct {
	SessionID string        `json:"session_id"`
	Draft     PropertyDraft `json:"draft"`
	AgentID   *string       `json:"agent_id"`
}

// SubmissionAck is the acknowledgement returned by the submission service.
type SubmissionAck struct {
	Reference   string    `json:"reference"`
	SubmittedAt time.Time `json:"submitted_at"`
}
