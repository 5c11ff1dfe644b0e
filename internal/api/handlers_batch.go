package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sagaw22/URPXconverter/internal/convert"
	"github.com/Sagaw22/URPXconverter/internal/pipeline"
)

type batchRequest struct {
	Files     []string `json:"files"`
	OutputDir string   `json:"output_dir"`
	Mode      string   `json:"mode"`
}

// handleSubmitBatch queues a conversion batch over server-local paths.
// The batch runs asynchronously; per-file failures are collected in
// the batch progress, never aborting the remaining files.
func (s *Server) handleSubmitBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	mode := convert.Mode(req.Mode)
	if mode == "" {
		mode = convert.Mode(s.cfg.DefaultMode)
	}
	if !mode.Valid() {
		jsonError(w, fmt.Sprintf("mode must be %q or %q", convert.ModeScript, convert.ModeText), http.StatusBadRequest)
		return
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = s.cfg.OutputDir
	}

	batch := pipeline.NewBatch(req.Files, outputDir, mode)
	if err := s.orchestrator.Submit(batch); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"batch_id": batch.ID,
		"status":   batch.Status,
		"poll_url": fmt.Sprintf("/api/batches/%s", batch.ID),
	})
}

func (s *Server) handleBatchStatus(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	batch := s.orchestrator.GetBatch(batchID)
	if batch == nil {
		jsonError(w, "batch not found", http.StatusNotFound)
		return
	}
	snap := batch.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}
