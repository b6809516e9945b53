package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/leapmux/idgen/idgen"
	"github.com/leapmux/idgen/internal/codec"
	"github.com/leapmux/idgen/internal/metrics"
	"github.com/leapmux/idgen/internal/validate"
)

// maxNanoIDSize bounds the size parameter of /v1/nanoid.
const maxNanoIDSize = 1024

type idsResponse struct {
	IDs any `json:"ids"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleShort(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, "short", func(n int) any { return s.client.ShortIDBatch(n) })
}

func (s *Server) handleShort16(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, "short16", func(n int) any { return s.client.ShortID16Batch(n) })
}

func (s *Server) handleUUID(w http.ResponseWriter, r *http.Request) {
	var gen func(int) []idgen.ID
	switch r.PathValue("version") {
	case "1":
		gen = s.client.UUID1Batch
	case "4":
		gen = s.client.UUID4Batch
	case "7":
		gen = s.client.UUID7Batch
	default:
		s.writeError(w, r, http.StatusNotFound, errors.New("version must be 1, 4 or 7"))
		return
	}
	s.generate(w, r, "uuid"+r.PathValue("version"), func(n int) any { return gen(n) })
}

func (s *Server) handleNanoID(w http.ResponseWriter, r *http.Request) {
	size, err := validate.SanitizeCount("size", r.URL.Query().Get("size"), idgen.DefaultNanoIDSize, maxNanoIDSize)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	s.generate(w, r, "nanoid", func(n int) any { return s.client.NanoIDBatch(n, size) })
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	i, err := idgen.Parse(r.PathValue("value"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, idgen.Inspect(i))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// generate reads the n parameter, produces n items and writes them.
func (s *Server) generate(w http.ResponseWriter, r *http.Request, kind string, gen func(n int) any) {
	n, err := validate.SanitizeCount("n", r.URL.Query().Get("n"), 1, s.cfg.MaxBatch)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	ids := gen(n)
	metrics.RecordGenerated(kind, n)
	s.writeJSON(w, r, http.StatusOK, idsResponse{IDs: ids})
}

// writeJSON encodes v and compresses it with zstd when the body is at least
// CompressMinBytes long and the client accepts zstd.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response", "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Add("Vary", "Accept-Encoding")
	if len(body) >= s.cfg.CompressMinBytes && codec.Negotiate(r.Header.Get("Accept-Encoding")) == codec.Zstd {
		body = codec.Compress(body)
		h.Set("Content-Encoding", string(codec.Zstd))
	}
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	slog.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	s.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}
