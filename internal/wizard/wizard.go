package wizard

import (
	"context"
	"errors"

	"sunstate/server/internal/models"
	"sunstate/server/internal/validation"
)

// Step identifies one of the three ordered wizard steps.
type Step int

const (
	StepDetails Step = 1
	StepAgent   Step = 2
	StepReview  Step = 3
)

// Status is the wizard's submission sub-state.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
)

var (
	ErrInvalidTransition = errors.New("invalid step transition")
	ErrAlreadySubmitted  = errors.New("listing has already been submitted")
	ErrSubmitInProgress  = errors.New("submission already in progress")
	ErrNotAtReview       = errors.New("submission is only allowed from the review step")
)

// detailsSchema gates the transition out of the details step.
var detailsSchema = validation.Schema{
	"propertyType": {Required: true, Message: "Property type is required"},
	"address":      {MinLength: 5, Message: "Full address is required"},
	"bedrooms":     {MinNumber: validation.MinNumber(0), Message: "Must be a positive number"},
	"bathrooms":    {MinNumber: validation.MinNumber(0), Message: "Must be a positive number"},
	"parking":      {MinNumber: validation.MinNumber(0), Message: "Must be a positive number"},
	"price":        {Required: true, Message: "Price is required"},
	"description":  {MinLength: 20, Message: "Description must be at least 20 characters"},
}

// ValidateDetails checks a draft against the details-step schema.
func ValidateDetails(draft models.PropertyDraft) validation.Errors {
	return detailsSchema.Validate(map[string]interface{}{
		"propertyType": draft.PropertyType,
		"address":      draft.Address,
		"bedrooms":     draft.Bedrooms,
		"bathrooms":    draft.Bathrooms,
		"parking":      draft.Parking,
		"price":        draft.Price,
		"description":  draft.Description,
	})
}

// Wizard tracks a single listing-intake session: the active step, the
// accumulated draft and the agent choice. It is owned by exactly one session
// and is serialisable so it can live in an external session store.
type Wizard struct {
	ID          string               `json:"id"`
	CurrentStep Step                 `json:"current_step"`
	Status      Status               `json:"status"`
	Draft       models.PropertyDraft `json:"draft"`
	AgentID     *string              `json:"agent_id"`
	AgentChosen bool                 `json:"agent_chosen"`
	Reference   string               `json:"reference,omitempty"`
}

// New returns a wizard at the details step with an empty draft and no agent
// choice recorded.
func New(id string) *Wizard {
	return &Wizard{
		ID:          id,
		CurrentStep: StepDetails,
		Status:      StatusInProgress,
	}
}

// SubmitDetails validates the draft and, when valid, replaces the accumulated
// record wholesale and advances to the agent step. On validation failure the
// wizard does not advance and the per-field errors are returned.
func (w *Wizard) SubmitDetails(draft models.PropertyDraft) (validation.Errors, error) {
	if w.Status != StatusInProgress {
		return nil, ErrAlreadySubmitted
	}
	if errs := ValidateDetails(draft); errs != nil {
		return errs, nil
	}

	w.Draft = draft
	if w.CurrentStep == StepDetails {
		w.CurrentStep = StepAgent
	}
	return nil, nil
}

// SelectAgent records the agent choice. A nil id is the explicit "no agent"
// choice, distinct from the initial not-yet-chosen state. Selection never
// advances the step and every choice is valid.
func (w *Wizard) SelectAgent(agentID *string) error {
	if w.Status != StatusInProgress {
		return ErrAlreadySubmitted
	}
	w.AgentID = agentID
	w.AgentChosen = true
	return nil
}

// Next advances from the agent step to the review step. Forward movement out
// of the details step must go through SubmitDetails.
func (w *Wizard) Next() error {
	if w.Status != StatusInProgress {
		return ErrAlreadySubmitted
	}
	if w.CurrentStep != StepAgent {
		return ErrInvalidTransition
	}
	w.CurrentStep = StepReview
	return nil
}

// Back moves one step backwards, preserving the draft for re-editing. There
// is no back affordance from the details step or after submission.
func (w *Wizard) Back() error {
	if w.Status != StatusInProgress {
		return ErrAlreadySubmitted
	}
	if w.CurrentStep != StepAgent && w.CurrentStep != StepReview {
		return ErrInvalidTransition
	}
	w.CurrentStep--
	return nil
}

// GoTo jumps directly to an already-reached step. Jumping ahead of the
// current step is a deliberate no-op: forward movement must go through each
// step's own action.
func (w *Wizard) GoTo(step Step) {
	if w.Status != StatusInProgress {
		return
	}
	if step < StepDetails || step > w.CurrentStep {
		return
	}
	w.CurrentStep = step
}

// Submitter hands a completed listing to the external submission service.
type Submitter interface {
	Submit(ctx context.Context, listing models.ListingSubmission) (models.SubmissionAck, error)
}

// BeginSubmit guards entry into the submitting sub-state. Callers that keep
// the wizard in an external store must persist the wizard after a successful
// BeginSubmit so overlapping submits for the same session are rejected
// everywhere, not just on the copy in hand.
func (w *Wizard) BeginSubmit() error {
	switch {
	case w.Status == StatusSubmitted:
		return ErrAlreadySubmitted
	case w.Status == StatusSubmitting:
		return ErrSubmitInProgress
	case w.CurrentStep != StepReview:
		return ErrNotAtReview
	}
	w.Status = StatusSubmitting
	return nil
}

// Submission builds the payload handed to the submission service.
func (w *Wizard) Submission() models.ListingSubmission {
	return models.ListingSubmission{
		SessionID: w.ID,
		Draft:     w.Draft,
		AgentID:   w.AgentID,
	}
}

// AbortSubmit returns a failed submission to the review step so it can be
// retried.
func (w *Wizard) AbortSubmit() {
	if w.Status == StatusSubmitting {
		w.Status = StatusInProgress
	}
}

// CompleteSubmit records the acknowledgement and enters the terminal state.
func (w *Wizard) CompleteSubmit(ack models.SubmissionAck) {
	w.Status = StatusSubmitted
	w.Reference = ack.Reference
}

// Submit hands the accumulated draft to the submitter. Success is terminal;
// on failure the wizard returns to the review step so the submission can be
// retried.
func (w *Wizard) Submit(ctx context.Context, submitter Submitter) (models.SubmissionAck, error) {
	if err := w.BeginSubmit(); err != nil {
		return models.SubmissionAck{}, err
	}

	ack, err := submitter.Submit(ctx, w.Submission())
	if err != nil {
		w.AbortSubmit()
		return models.SubmissionAck{}, err
	}

	w.CompleteSubmit(ack)
	return ack, nil
}
