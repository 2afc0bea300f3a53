package uploads

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"xcelliti-backend/internal/middleware"
	"xcelliti-backend/internal/transport"
)

const maxUploadBytes = 20 << 20

type Handler struct {
	client *CloudinaryClient
	log    *slog.Logger
}

func NewHandler(client *CloudinaryClient, log *slog.Logger) *Handler {
	return &Handler{client: client, log: log}
}

type uploadResponse struct {
	URL          string `json:"url"`
	PublicID     string `json:"public_id"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if h.client == nil {
		log.Warn("upload: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "uploads not configured", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("upload: no file")
		transport.WriteError(w, http.StatusBadRequest, "no file uploaded", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Warn("upload: read error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "could not read file", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := h.client.Upload(ctx, header.Filename, data)
	if err != nil {
		log.Error("upload: relay error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "error uploading file", nil)
		return
	}

	fileName := result.PublicID
	if result.Format != "" {
		fileName = result.PublicID + "." + result.Format
	}

	log.Info("upload: ok", slog.String("public_id", result.PublicID), slog.Int64("size", int64(len(data))))
	transport.WriteJSON(w, http.StatusOK, uploadResponse{
		URL:          result.URL,
		PublicID:     result.PublicID,
		FileName:     fileName,
		OriginalName: header.Filename,
		Size:         int64(len(data)),
		Type:         header.Header.Get("Content-Type"),
		Width:        result.Width,
		Height:       result.Height,
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
