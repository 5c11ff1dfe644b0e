package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sagaw22/URPXconverter/internal/convert"
	"github.com/Sagaw22/URPXconverter/internal/metrics"
	"github.com/Sagaw22/URPXconverter/internal/urpx"
)

// handleConvert converts one uploaded .urpx file synchronously and
// returns the converted text. Nothing is written server-side; the
// response body is the would-be output file.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	mode := convert.Mode(r.FormValue("mode"))
	if mode == "" {
		mode = convert.Mode(s.cfg.DefaultMode)
	}
	if !mode.Valid() {
		jsonError(w, fmt.Sprintf("mode must be %q or %q", convert.ModeScript, convert.ModeText), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	start := time.Now()
	doc, err := urpx.ParseDocument(data)
	if err != nil {
		metrics.ConversionFailed(string(mode), "parse")
		jsonError(w, "not a valid project document: "+err.Error(), http.StatusBadRequest)
		return
	}

	var text string
	switch mode {
	case convert.ModeScript:
		text = urpx.RenderScript(doc, convert.Stem(filename))
	case convert.ModeText:
		text, err = urpx.RenderOutline(doc)
		if err != nil {
			metrics.ConversionFailed(string(mode), "parse")
			jsonError(w, "malformed program tree: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	metrics.ConversionDone(string(mode), time.Since(start).Seconds())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", convert.OutputName(filename, mode)))
	w.Write([]byte(text))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
