package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/mailer"
	"github.com/MKhiriev/portfolio-admin/internal/service"
	"github.com/MKhiriev/portfolio-admin/internal/utils"
	"github.com/MKhiriev/portfolio-admin/models"
)

func (h *Handler) sendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// The body is optional: an empty body means no password re-verification.
	var request models.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if request.OldPassword != "" {
		ok, err := h.services.AuthService.VerifyPassword(ctx, request.OldPassword)
		if err != nil {
			log.Err(err).Msg("unexpected error occurred during password verification")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if !ok {
			log.Warn().Msg("otp dispatch denied: wrong current password")
			h.writeError(w, "Current password is incorrect", http.StatusUnauthorized)
			return
		}
	}

	if err := h.services.OTPService.Issue(ctx); err != nil {
		switch {
		case errors.Is(err, mailer.ErrNotConfigured):
			log.Err(err).Msg("otp dispatch failed: smtp not configured")
			h.writeError(w, mailer.ErrNotConfigured.Error(), http.StatusInternalServerError)
			return
		case errors.Is(err, mailer.ErrAuthFailed):
			log.Err(err).Msg("otp dispatch failed: smtp authentication")
			h.writeError(w, mailer.ErrAuthFailed.Error(), http.StatusInternalServerError)
			return
		case errors.Is(err, mailer.ErrConnectionFailed):
			log.Err(err).Msg("otp dispatch failed: smtp connection")
			h.writeError(w, mailer.ErrConnectionFailed.Error(), http.StatusInternalServerError)
			return
		case errors.Is(err, service.ErrNoAdminEmail):
			log.Err(err).Msg("otp dispatch failed: no admin email configured")
			h.writeError(w, service.ErrNoAdminEmail.Error(), http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during otp dispatch")
			h.writeError(w, "Failed to send OTP email", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true, Message: "OTP sent to your email"}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Validate before redeeming the code: a rejected request must not burn
	// the single-use OTP.
	if request.NewPassword == "" || request.ConfirmPassword == "" || request.OTP == "" {
		h.writeError(w, "All fields are required", http.StatusBadRequest)
		return
	}
	if request.NewPassword != request.ConfirmPassword {
		h.writeError(w, service.ErrPasswordMismatch.Error(), http.StatusBadRequest)
		return
	}
	if utf8.RuneCountInString(request.NewPassword) < 8 {
		h.writeError(w, service.ErrPasswordTooShort.Error(), http.StatusBadRequest)
		return
	}

	code, err := service.NormalizeOTPInput(request.OTP)
	if err != nil {
		h.writeError(w, service.ErrInvalidOTPFormat.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.services.OTPService.Verify(ctx, code)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during otp verification")
		h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !ok {
		log.Warn().Msg("password change denied: invalid or expired otp")
		h.writeError(w, "Invalid or expired OTP", http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, request.NewPassword, request.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch) || errors.Is(err, service.ErrPasswordTooShort):
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password change")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true, Message: "Password changed successfully"}, http.StatusOK)
}
