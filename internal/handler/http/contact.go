package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/service"
	"github.com/MKhiriev/portfolio-admin/internal/utils"
	"github.com/MKhiriev/portfolio-admin/models"
)

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.MessageService.Submit(ctx, request); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidName) ||
			errors.Is(err, service.ErrInvalidEmail) ||
			errors.Is(err, service.ErrShortMessage):
			log.Warn().Err(err).Msg("contact submission rejected")
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during contact submission")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true, Message: "Message sent successfully"}, http.StatusOK)
}
