package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/service"
)

type AdminHandler struct {
	submissionService *service.SubmissionService
	adminService      *service.AdminService
}

func NewAdminHandler(submissionService *service.SubmissionService, adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		submissionService: submissionService,
		adminService:      adminService,
	}
}

type LoginRequest struct {
	Secret string `json:"secret"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the shared secret for a short-lived session token.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !h.adminService.VerifySecret(req.Secret) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	token, err := h.adminService.IssueToken()
	if err != nil {
		log.Printf("ERROR [admin.Login]: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

type FeatureRequest struct {
	Date         string `json:"date"`
	SubmissionID string `json:"submissionId"`
	Featured     bool   `json:"featured"`
}

type FeatureResponse struct {
	Meta domain.DayMeta `json:"meta"`
}

// Feature toggles a submission on a day's featured list.
func (h *AdminHandler) Feature(w http.ResponseWriter, r *http.Request) {
	var req FeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	meta, err := h.submissionService.SetFeatured(r.Context(), req.Date, req.SubmissionID, req.Featured)
	if err != nil {
		if domain.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [admin.Feature] date=%s id=%s: %v", req.Date, req.SubmissionID, err)
		writeError(w, http.StatusInternalServerError, "failed to update featured list")
		return
	}

	writeJSON(w, http.StatusOK, FeatureResponse{Meta: *meta})
}
