package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"property-search/models"
	"property-search/services"
	"property-search/utils"
)

// Handler serves the HTTP routes.
type Handler struct {
	search   *services.SearchController
	sessions *services.SessionRegistry
	logger   *utils.Logger
}

func NewHandler(search *services.SearchController, sessions *services.SessionRegistry, logger *utils.Logger) *Handler {
	return &Handler{search: search, sessions: sessions, logger: logger}
}

// SearchResponse is the body of a search.
type SearchResponse struct {
	Properties []models.Property     `json:"properties"`
	Count      int                   `json:"count"`
	Label      string                `json:"label"`
	Summary    *models.ResultSummary `json:"summary"`
	// Query is the canonical query string for the applied criteria.
	Query   string   `json:"query"`
	Ignored []string `json:"ignored,omitempty"`
}

// SelectionResponse is a session's selection state with resolved records.
type SelectionResponse struct {
	models.Snapshot
	FavoriteProperties   []models.Property `json:"favorite_properties"`
	ComparisonProperties []models.Property `json:"comparison_properties"`
}

type viewModeRequest struct {
	ViewMode models.ViewMode `json:"view_mode"`
}

type viewModeResponse struct {
	ViewMode models.ViewMode `json:"view_mode"`
	Warning  string          `json:"warning,omitempty"`
}

// SearchProperties handles GET /properties?<criteria>.
func (h *Handler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	res := h.search.SearchQuery(r.URL.Query())
	RespondWithJSON(w, http.StatusOK, SearchResponse{
		Properties: res.Properties,
		Count:      res.Count,
		Label:      services.ResultCountLabel(res.Count),
		Summary:    res.Summary,
		Query:      services.EncodeCriteria(res.Criteria).Encode(),
		Ignored:    res.Ignored,
	})
}

// GetProperty handles GET /properties/{id}.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := h.propertyID(w, r)
	if !ok {
		return
	}
	p, err := h.search.Property(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, p)
}

// SearchKeyword handles GET /search?q=.
func (h *Handler) SearchKeyword(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		WriteJSONError(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}
	res := h.search.SearchByKeyword(q)
	RespondWithJSON(w, http.StatusOK, SearchResponse{
		Properties: res.Properties,
		Count:      res.Count,
		Label:      services.ResultCountLabel(res.Count),
		Summary:    res.Summary,
	})
}

// Suggestions handles GET /suggestions?q=.
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := h.search.Suggest(r.URL.Query().Get("q"))
	if suggestions == nil {
		suggestions = []string{}
	}
	RespondWithJSON(w, http.StatusOK, suggestions)
}

// GetSelection handles GET /selection.
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	snap := h.manager(r).Snapshot()
	RespondWithJSON(w, http.StatusOK, SelectionResponse{
		Snapshot:             snap,
		FavoriteProperties:   h.search.Properties(snap.Favorites),
		ComparisonProperties: h.search.Properties(snap.Comparison),
	})
}

// ToggleFavorite handles POST /favorites/{id}.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := h.existingPropertyID(w, r)
	if !ok {
		return
	}
	RespondWithJSON(w, http.StatusOK, h.manager(r).ToggleFavorite(id))
}

// ToggleComparison handles POST /comparison/{id}. A rejected insert is a
// normal outcome, not an error.
func (h *Handler) ToggleComparison(w http.ResponseWriter, r *http.Request) {
	id, ok := h.existingPropertyID(w, r)
	if !ok {
		return
	}
	RespondWithJSON(w, http.StatusOK, h.manager(r).ToggleComparison(id))
}

// ClearComparison handles DELETE /comparison.
func (h *Handler) ClearComparison(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, h.manager(r).ClearComparison())
}

// SetViewMode handles PUT /view-mode with {"view_mode": "grid"|"list"}.
func (h *Handler) SetViewMode(w http.ResponseWriter, r *http.Request) {
	var req viewModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	m := h.manager(r)
	resp := viewModeResponse{ViewMode: req.ViewMode}
	if err := m.SetViewMode(req.ViewMode); err != nil {
		if !errors.Is(err, models.ErrStorageUnavailable) {
			h.writeError(w, r, err)
			return
		}
		resp.Warning = err.Error()
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// CreateInquiry handles POST /inquiries.
func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var in services.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := h.search.Property(in.PropertyID); err != nil {
		h.writeError(w, r, err)
		return
	}
	if errs := services.ValidateInquiry(in); len(errs) > 0 {
		RespondWithJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	h.logger.Info("[inquiry] Property %d: inquiry from %s <%s> trace=%s",
		in.PropertyID, in.Name, in.Email, traceFromContext(r.Context()))
	RespondWithJSON(w, http.StatusAccepted, map[string]string{
		"status":  "received",
		"message": "Thank you! Your inquiry has been sent successfully.",
	})
}

func (h *Handler) manager(r *http.Request) *services.SelectionManager {
	return h.sessions.Get(sessionFromContext(r.Context()))
}

func (h *Handler) propertyID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id "+strconv.Quote(raw))
		return 0, false
	}
	return id, true
}

// existingPropertyID is propertyID plus a catalogue lookup.
func (h *Handler) existingPropertyID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := h.propertyID(w, r)
	if !ok {
		return 0, false
	}
	if _, err := h.search.Property(id); err != nil {
		h.writeError(w, r, err)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidViewMode), errors.Is(err, models.ErrInvalidCriteriaValue):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("[http] %s %s: %v trace=%s", r.Method, r.URL.Path, err, traceFromContext(r.Context()))
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
