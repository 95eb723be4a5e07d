package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/service"
	"github.com/go-chi/chi/v5"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

type SubmitRequest struct {
	Date        string         `json:"date"`
	Name        string         `json:"name"`
	Fingerprint string         `json:"fingerprint"`
	CardIDs     []string       `json:"cardIds"`
	Basics      map[string]int `json:"basics"`
	Colors      []string       `json:"colors"`
}

type SubmitResponse struct {
	ID          string              `json:"id"`
	Submissions []domain.Submission `json:"submissions"`
	Meta        domain.DayMeta      `json:"meta"`
}

func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.submissionService.Submit(r.Context(), service.SubmitInput{
		Date:        req.Date,
		Name:        req.Name,
		Fingerprint: req.Fingerprint,
		CardIDs:     req.CardIDs,
		Basics:      req.Basics,
		Colors:      req.Colors,
	})
	if err != nil {
		if domain.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [submission.Submit]: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to store submission")
		return
	}

	status := http.StatusOK
	if result.Conflict {
		// A repeat fingerprint still gets its original id and the current
		// day snapshot.
		status = http.StatusConflict
	}
	writeJSON(w, status, SubmitResponse{
		ID:          result.ID,
		Submissions: result.Snapshot.Submissions,
		Meta:        result.Snapshot.Meta,
	})
}

type DayResponse struct {
	Submissions []domain.Submission `json:"submissions"`
	Meta        domain.DayMeta      `json:"meta"`
}

type LockedDayResponse struct {
	Count int `json:"count"`
}

func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	fingerprint := r.URL.Query().Get("fingerprint")

	view, err := h.submissionService.Day(r.Context(), date, fingerprint)
	if err != nil {
		if domain.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [submission.Get] date=%s: %v", date, err)
		writeError(w, http.StatusInternalServerError, "failed to load submissions")
		return
	}

	if !view.Unlocked {
		// Submit first to see everyone's decks.
		writeJSON(w, http.StatusForbidden, LockedDayResponse{Count: view.Count})
		return
	}

	writeJSON(w, http.StatusOK, DayResponse{
		Submissions: view.Snapshot.Submissions,
		Meta:        view.Snapshot.Meta,
	})
}
