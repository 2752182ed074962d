// Package server exposes the extraction pipeline over HTTP: a multipart
// upload endpoint returning the JSON extraction record, plus a liveness
// route. Input rejection (missing part, empty filename, wrong extension) is
// reported with a descriptive 400 before any processing starts.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/talentsift/talentsift/constants"
	"github.com/talentsift/talentsift/internal/common"
	"github.com/talentsift/talentsift/internal/extract"
)

// Processor runs the extraction pipeline for a stored document.
type Processor interface {
	Process(ctx context.Context, path string) (extract.Result, error)
}

type Server struct {
	logger *slog.Logger
	proc   Processor
	cfg    common.ServerConfig
	schema map[string]any
}

func New(logger *slog.Logger, proc Processor, cfg common.ServerConfig) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 16 << 20
	}
	return &Server{logger: logger, proc: proc, cfg: cfg, schema: buildResultSchema()}
}

// Router builds the chi router with request-ID middleware on every route.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/upload", s.handleUpload)
	return r
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := common.WithRequestID(r.Context(), reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	reqID := common.RequestIDFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "Upload too large"})
		case errors.Is(err, http.ErrNotMultipart):
			// Not a multipart request at all, so there is no file part.
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file part"})
		default:
			s.logger.Warn("multipart parse failed", "request_id", reqID, "error", err)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Malformed upload"})
		}
		return
	}

	// A part with an empty filename is parsed as a plain form value, so it
	// shows up under Value, not File; that is the "selected nothing" case.
	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		if _, present := r.MultipartForm.Value["file"]; present {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No selected file"})
		} else {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file part"})
		}
		return
	}
	hdr := headers[0]
	if hdr.Filename == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No selected file"})
		return
	}
	if !constants.AllowedExt(filepath.Ext(hdr.Filename)) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "File type not allowed"})
		return
	}

	file, err := hdr.Open()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No selected file"})
		return
	}
	defer func() { _ = file.Close() }()

	path, err := s.saveUpload(file, hdr)
	if err != nil {
		s.logger.Error("save upload failed", "request_id", reqID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not store upload"})
		return
	}
	s.logger.Info("upload stored", "request_id", reqID, "path", path, "bytes", hdr.Size)

	res, err := s.proc.Process(r.Context(), path)
	if err != nil {
		// Collaborator failure is a hard failure, never downgraded to an
		// empty result; an empty result here would be indistinguishable
		// from a legitimate "nothing found".
		s.logger.Error("extraction failed", "request_id", reqID, "path", path, "error", err)
		writeJSON(w, common.HTTPStatus(err), map[string]string{"error": "extraction failed: " + err.Error()})
		return
	}

	payload, err := json.Marshal(res)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "encode result"})
		return
	}
	if s.cfg.StrictResponse {
		if err := validateJSONAgainstSchema(s.schema, payload); err != nil {
			s.logger.Error("response contract violation", "request_id", reqID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "response contract violation"})
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) saveUpload(file multipart.File, hdr *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + "_" + sanitizeFilename(hdr.Filename)
	path := filepath.Join(s.cfg.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeFilename keeps only the base name and replaces anything outside a
// conservative character set, so an uploaded filename can never escape the
// upload directory.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == ".." {
		return "upload.pdf"
	}
	return base
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response", "error", err)
	}
}
