package handler

import (
	"net/http"
	"strings"

	"github.com/mavisigorta/backend/internal/service"
)

// allowedLegalTypes is the allowlist of legal document type names.
// Only these values may be requested via GET /api/legal/{type}.
var allowedLegalTypes = map[string]bool{
	"kvkk":    true,
	"privacy": true,
	"terms":   true,
}

// LegalHandler handles GET /api/legal/{type}.
type LegalHandler struct {
	content service.ContentService
}

// NewLegalHandler creates a LegalHandler reading documents through content.
func NewLegalHandler(content service.ContentService) *LegalHandler {
	return &LegalHandler{content: content}
}

// Legal handles GET /api/legal/{type}.
// Returns the requested legal document rendered to HTML.
// Responds 404 when the document does not exist.
// Rejects path traversal attempts with 400.
func (h *LegalHandler) Legal(w http.ResponseWriter, r *http.Request) {
	docType := r.PathValue("type")

	// Security: reject any traversal characters before allowlist check.
	if strings.Contains(docType, "/") || strings.Contains(docType, "\\") || strings.Contains(docType, "..") {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if !allowedLegalTypes[docType] {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	html, ok := h.content.LegalDocument(r.Context(), docType)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
