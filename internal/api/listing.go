package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sunstate/server/config"
	"sunstate/server/internal/metrics"
	"sunstate/server/internal/models"
	"sunstate/server/internal/session"
	"sunstate/server/internal/wizard"
)

type agentSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Specialty string `json:"specialty"`
}

type sessionView struct {
	SessionID   string               `json:"session_id"`
	CurrentStep int                  `json:"current_step"`
	Status      string               `json:"status"`
	Draft       models.PropertyDraft `json:"draft"`
	AgentChosen bool                 `json:"agent_chosen"`
	Agent       *agentSummary        `json:"agent"`
	AgentLabel  string               `json:"agent_label,omitempty"`
}

type agentChoiceRequest struct {
	AgentID *string `json:"agent_id"`
}

type stepRequest struct {
	Step int `json:"step" binding:"required"`
}

func (h *Handler) sessionView(w *wizard.Wizard, locale string) sessionView {
	view := sessionView{
		SessionID:   w.ID,
		CurrentStep: int(w.CurrentStep),
		Status:      string(w.Status),
		Draft:       w.Draft,
		AgentChosen: w.AgentChosen,
	}

	if w.AgentChosen {
		if w.AgentID == nil {
			view.AgentLabel = h.translator.T(locale, "review.no_agent")
		} else if agent := config.GetAgentByID(*w.AgentID); agent != nil {
			view.Agent = &agentSummary{
				ID:        agent.ID,
				Name:      agent.Name,
				Title:     agent.Title,
				Specialty: agent.Specialty,
			}
			view.AgentLabel = agent.Name
		}
	}
	return view
}

// CreateSession starts a new listing-intake wizard session.
func (h *Handler) CreateSession(c *gin.Context) {
	w := wizard.New(uuid.NewString())
	if err := h.store.Create(c.Request.Context(), w); err != nil {
		h.logger.WithError(err).Error("Failed to create wizard session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	metrics.WizardSessionsCreated.Inc()
	c.JSON(http.StatusCreated, h.sessionView(w, h.locale(c)))
}

// GetSession returns the current wizard state, including the review summary.
func (h *Handler) GetSession(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.sessionView(w, h.locale(c)))
}

// SubmitDetails validates the details form and advances to the agent step.
func (h *Handler) SubmitDetails(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	var draft models.PropertyDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.logger.WithError(err).Error("Failed to parse property details")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	errs, err := w.SubmitDetails(draft)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	h.saveAndRespond(c, w)
}

// SelectAgent records the agent choice, including the explicit null choice.
func (h *Handler) SelectAgent(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	var req agentChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse agent choice")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.AgentID != nil && config.GetAgentByID(*req.AgentID) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown agent"})
		return
	}

	if err := w.SelectAgent(req.AgentID); err != nil {
		h.wizardError(c, err)
		return
	}

	h.saveAndRespond(c, w)
}

// AdvanceStep moves from the agent step to the review step.
func (h *Handler) AdvanceStep(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	if err := w.Next(); err != nil {
		h.wizardError(c, err)
		return
	}

	h.saveAndRespond(c, w)
}

// StepBack moves one step backwards, preserving the draft.
func (h *Handler) StepBack(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	if err := w.Back(); err != nil {
		h.wizardError(c, err)
		return
	}

	h.saveAndRespond(c, w)
}

// JumpToStep jumps to an already-reached step via the step indicator.
// Jumping forward is a no-op, so the response always reflects the resulting
// state rather than an error.
func (h *Handler) JumpToStep(c *gin.Context) {
	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse step jump")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	w.GoTo(wizard.Step(req.Step))
	h.saveAndRespond(c, w)
}

// SubmitListing hands the reviewed draft to the submission service. Success
// is terminal; failure returns the wizard to the review step with the error
// surfaced so the submission can be retried. Overlapping submits for the
// same session are rejected: a per-session single-flight guard covers this
// instance, and the submitting state is persisted before the round-trip so
// other instances sharing the store reject too.
func (h *Handler) SubmitListing(c *gin.Context) {
	id := c.Param("id")
	if _, inFlight := h.inflight.LoadOrStore(id, struct{}{}); inFlight {
		c.JSON(http.StatusConflict, gin.H{"error": wizard.ErrSubmitInProgress.Error()})
		return
	}
	defer h.inflight.Delete(id)

	w, ok := h.loadSession(c)
	if !ok {
		return
	}

	locale := h.locale(c)
	if err := w.BeginSubmit(); err != nil {
		h.wizardError(c, err)
		return
	}

	if err := h.store.Save(c.Request.Context(), w); err != nil {
		h.logger.WithError(err).Error("Failed to save wizard session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	ack, err := h.submitter.Submit(c.Request.Context(), w.Submission())
	if err != nil {
		h.logger.WithError(err).Error("Listing submission failed")
		w.AbortSubmit()
		if saveErr := h.store.Save(c.Request.Context(), w); saveErr != nil {
			h.logger.WithError(saveErr).Error("Failed to save wizard session")
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Submission failed. Please try again."})
		return
	}

	w.CompleteSubmit(ack)
	if err := h.store.Save(c.Request.Context(), w); err != nil {
		h.logger.WithError(err).Error("Failed to save wizard session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	metrics.ListingsSubmitted.Inc()
	c.JSON(http.StatusOK, gin.H{
		"session": h.sessionView(w, locale),
		"confirmation": gin.H{
			"reference":    ack.Reference,
			"submitted_at": ack.SubmittedAt,
			"title":        h.translator.T(locale, "listing.submitted_title"),
			"next_steps":   h.translator.List(locale, "listing.next_steps"),
		},
	})
}

func (h *Handler) loadSession(c *gin.Context) (*wizard.Wizard, bool) {
	id := c.Param("id")
	w, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to load wizard session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return nil, false
	}
	return w, true
}

func (h *Handler) saveAndRespond(c *gin.Context, w *wizard.Wizard) {
	if err := h.store.Save(c.Request.Context(), w); err != nil {
		h.logger.WithError(err).Error("Failed to save wizard session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, h.sessionView(w, h.locale(c)))
}

func (h *Handler) wizardError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, wizard.ErrAlreadySubmitted) || errors.Is(err, wizard.ErrSubmitInProgress) {
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
