package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
	"github.com/heartmarshall/moodbook-backend/internal/service/diary"
)

//go:generate moq -out diary_service_mock_test.go -pkg rest . diaryService

type diaryService interface {
	CreateEntry(ctx context.Context, input diary.CreateEntryInput) (*domain.DiaryEntry, error)
	GetEntry(ctx context.Context, date string) (*domain.DiaryEntry, error)
	UpdateEntry(ctx context.Context, input diary.UpdateEntryInput) (*domain.DiaryEntry, error)
	DeleteEntry(ctx context.Context, input diary.DeleteEntryInput) error
	ListEntries(ctx context.Context) ([]domain.DiaryEntry, error)
	Heatmap(ctx context.Context, month string) ([]domain.EmotionMark, error)
}

// DiaryHandler serves the diary CRUD and heatmap endpoints.
type DiaryHandler struct {
	svc diaryService
	log *slog.Logger
}

// NewDiaryHandler creates a DiaryHandler.
func NewDiaryHandler(svc diaryService, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{svc: svc, log: logger.With("handler", "diary")}
}

func (r entryRequest) content() diary.EntryContent {
	return diary.EntryContent{
		Title:         r.Title,
		Note:          r.Note,
		EmotionMarker: r.EmotionMarker,
		Mood:          r.Mood,
		Weather:       r.Weather,
		Activities:    r.Activities,
	}
}

// Create handles POST /api/diaries.
func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), diary.CreateEntryInput{
		Date:         req.Date,
		EntryContent: req.content(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(*entry))
}

// List handles GET /api/diaries.
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Get handles GET /api/diaries/{date}.
func (h *DiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetEntry(r.Context(), r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

// Update handles PUT /api/diaries/{date}. The path date addresses the entry;
// the optional body id must match it.
func (h *DiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := parseOptionalID(req.ID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), diary.UpdateEntryInput{
		ID:           id,
		Date:         r.PathValue("date"),
		EntryContent: req.content(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

// Delete handles DELETE /api/diaries/{date}?id=. Deleting a missing entry
// still answers 204.
func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseOptionalID(r.URL.Query().Get("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	err = h.svc.DeleteEntry(r.Context(), diary.DeleteEntryInput{ID: id, Date: r.PathValue("date")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Heatmap handles GET /api/diaries/heatmap?month=YYYY-MM.
func (h *DiaryHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	marks, err := h.svc.Heatmap(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMarkResponses(marks))
}

func parseOptionalID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}
