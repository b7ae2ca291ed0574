package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/store"
	"github.com/MKhiriev/portfolio-admin/internal/utils"
	"github.com/MKhiriev/portfolio-admin/models"
)

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	messages, err := h.services.MessageService.List(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing messages")
		h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Always serialize as an array, never null.
	if messages == nil {
		messages = []models.ContactMessage{}
	}

	utils.WriteJSON(w, models.MessagesResponse{Messages: messages}, http.StatusOK)
}

func (h *Handler) updateMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UpdateMessagesRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.MessageService.MarkRead(ctx, request.Messages); err != nil {
		switch {
		case errors.Is(err, store.ErrMessageNotFound):
			log.Warn().Err(err).Msg("message update rejected: unknown message id")
			h.writeError(w, "Message not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during updating messages")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
