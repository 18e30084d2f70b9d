// internal/handler/snapshots.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/leolimasa/leolang/internal/serializer"
	"github.com/leolimasa/leolang/internal/service"
)

const defaultPageSize = 20

type SnapshotHandler struct {
	service *service.LexService
}

func NewSnapshotHandler(service *service.LexService) *SnapshotHandler {
	return &SnapshotHandler{
		service: service,
	}
}

// CreateSnapshotRequest represents the request body for storing a snapshot
type CreateSnapshotRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Layout bool   `json:"layout"`
}

// DiffRequest represents the request body for comparing a source with a snapshot
type DiffRequest struct {
	Source string `json:"source"`
}

type ChangeRecord struct {
	Op    string                 `json:"op"`
	Token serializer.TokenRecord `json:"token"`
}

type DiffResponse struct {
	BaseResponse
	Changed bool           `json:"changed"`
	Added   int            `json:"added"`
	Removed int            `json:"removed"`
	Changes []ChangeRecord `json:"changes"`
	Report  string         `json:"report"`
}

// Create stores the token stream of a named source
func (h *SnapshotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSnapshotRequest
	if !decodeJSON(w, r, &req, bodyLimit(h.service.MaxSourceBytes())) {
		return
	}

	snap, err := h.service.SaveSnapshot(r.Context(), service.SnapshotInput{
		Name:   req.Name,
		Source: req.Source,
		Layout: req.Layout,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, snap)
}

// List returns a page of snapshots
func (h *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	pageSize, err := queryInt(r, "page_size", defaultPageSize)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid page size")
		return
	}

	result, err := h.service.ListSnapshots(r.Context(), service.ListSnapshotsInput{Page: page, PageSize: pageSize})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Get returns a single snapshot
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := snapshotID(w, r)
	if !ok {
		return
	}

	snap, err := h.service.GetSnapshot(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, snap)
}

// Delete removes a snapshot
func (h *SnapshotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := snapshotID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSnapshot(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Snapshot removed successfully",
	})
}

// Diff compares a source with a stored snapshot
func (h *SnapshotHandler) Diff(w http.ResponseWriter, r *http.Request) {
	id, ok := snapshotID(w, r)
	if !ok {
		return
	}

	var req DiffRequest
	if !decodeJSON(w, r, &req, bodyLimit(h.service.MaxSourceBytes())) {
		return
	}

	diff, err := h.service.DiffSnapshot(r.Context(), id, req.Source)
	if err != nil {
		handleError(w, r, err)
		return
	}

	changes := make([]ChangeRecord, len(diff.Changes))
	for i, c := range diff.Changes {
		changes[i] = ChangeRecord{Op: string(rune(c.Op)), Token: serializer.ToRecord(c.Token)}
	}

	respondWithJSON(w, http.StatusOK, DiffResponse{
		BaseResponse: BaseResponse{Ok: true},
		Changed:      !diff.IsEmpty(),
		Added:        len(diff.Added),
		Removed:      len(diff.Removed),
		Changes:      changes,
		Report:       diff.String(),
	})
}

func snapshotID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid snapshot ID")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
