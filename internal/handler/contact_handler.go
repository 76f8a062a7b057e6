package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mavisigorta/backend/internal/model"
	"github.com/mavisigorta/backend/internal/service"
)

// maxContactBodyBytes caps the POST /api/contact request body.
const maxContactBodyBytes = 64 << 10

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type contactSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type contactErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Submit handles POST /api/contact.
// name, email, phone and message are required; courseInterest is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var (
		sub model.ContactSubmission
		res model.ContactResult
	)

	body := http.MaxBytesReader(w, r.Body, maxContactBodyBytes)
	if err := json.NewDecoder(body).Decode(&sub); err != nil {
		slog.Warn("contact: malformed request body",
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		res = service.MalformedResult()
	} else {
		res = h.contactService.Submit(r.Context(), sub)
	}

	slog.Info("contact: submission handled",
		"request_id", RequestIDFromContext(r.Context()),
		"submission_id", res.SubmissionID,
		"outcome", res.Outcome,
	)

	if res.Accepted() {
		writeJSON(w, http.StatusOK, contactSuccessResponse{Success: true, Message: res.Message})
		return
	}
	writeJSON(w, contactStatus(res.Outcome), contactErrorResponse{Error: res.Message, Field: res.Field})
}

func contactStatus(outcome model.ContactOutcome) int {
	switch outcome {
	case model.OutcomeRejected, model.OutcomeMalformed:
		return http.StatusBadRequest
	case model.OutcomeDelivered, model.OutcomeDevSimulated:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
