package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/domain"
)

// ContactSubmitter stores a contact form submission.
type ContactSubmitter interface {
	Submit(ctx context.Context, in domain.ContactInput) (domain.ContactReceipt, error)
}

// ContactHandler handles POST /api/contact.
func ContactHandler(contact ContactSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.ContactInput
		if err := shared.DecodeJSON(r, &in); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		receipt, err := contact.Submit(r.Context(), in)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to send message")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, receipt)
	}
}
