package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	infraevents "github.com/growlocal360/maxx-energy/infrastructure/events"
	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
)

// ContactHandler accepts public contact form submissions.
type ContactHandler struct {
	store    ContentStore[models.ContactSubmission]
	notifier *Notifier
}

func NewContactHandler(store ContentStore[models.ContactSubmission], notifier *Notifier) *ContactHandler {
	return &ContactHandler{store: store, notifier: notifier}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactSubmissionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationErrorOr400(c, err)
		return
	}
	values, err := req.Values()
	if err != nil {
		handleValidationErrorOr400(c, err)
		return
	}

	submission, err := h.store.Create(c.Request.Context(), repository.Scope{}, values)
	if err != nil {
		handleRepositoryError(c, err, "Contact submission", "save")
		return
	}

	infralogger.FromContext(c.Request.Context()).Info("Contact form submitted",
		infralogger.String("submission_id", submission.ID.String()),
	)
	h.notifier.Changed(c.Request.Context(), Change{
		Type:   infraevents.ContentCreated,
		Entity: "contact_submission",
		ID:     submission.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"id":      submission.ID,
		"message": "Thank you for contacting us. We will be in touch shortly.",
	})
}
