package http

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/service"
	"github.com/MKhiriev/portfolio-admin/internal/utils"
	"github.com/MKhiriev/portfolio-admin/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ip := clientIP(r)

	allowed, retryAfter := h.services.AuthService.CheckBruteForce(ip)
	if !allowed {
		log.Warn().Str("ip", ip).Int("retry_after_minutes", retryAfter).Msg("login denied: too many failed attempts")
		h.writeError(w, fmt.Sprintf("Too many failed attempts. Please try again in %d minutes.", retryAfter), http.StatusTooManyRequests)
		return
	}

	ok, err := h.services.AuthService.VerifyPassword(ctx, request.Password)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during password verification")
		h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !ok {
		h.services.AuthService.RecordFailedAttempt(ip)
		log.Warn().Str("ip", ip).Msg("login failed: wrong password")
		h.writeError(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	h.services.AuthService.ClearAttempts(ip)

	token, err := h.services.AuthService.CreateToken()
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("ip", ip).Msg("admin logged in")

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{Success: true, Redirect: "/admin"}, http.StatusOK)
}

func (h *Handler) loginWithOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.OTPLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	code, err := service.NormalizeOTPInput(request.OTP)
	if err != nil {
		log.Warn().Msg("otp login failed: malformed code")
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
		log.Warn().Msg("otp login failed: invalid or expired code")
		h.writeError(w, "Invalid or expired OTP", http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.CreateToken()
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Msg("admin logged in with otp")

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{Success: true, Redirect: "/admin"}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	log.Info().Msg("admin logged out")

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// writeError sends a JSON error body so the admin panel frontend can display
// the message directly.
func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// clientIP extracts the client address for attempt tracking. RemoteAddr has
// already been rewritten by chi's RealIP middleware when the request came
// through a trusted proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
