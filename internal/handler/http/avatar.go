package http

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/lib/logger/sl"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

type AvatarHandler interface {
	// Serve streams an avatar image referenced by hierarchy and personal details
	Serve(w http.ResponseWriter, r *http.Request)
}

type avatarHandlerImpl struct {
	storage storage.AvatarStorage
	logger  *slog.Logger
}

func NewAvatarHandler(avatars storage.AvatarStorage, logger *slog.Logger) AvatarHandler {
	return &avatarHandlerImpl{storage: avatars, logger: logger}
}

// Serve handles GET /avatars/*
func (h *avatarHandlerImpl) Serve(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if path == "" {
		response.NotFound(w, "Avatar not found")
		return
	}

	// Exists also rejects directories and paths escaping the storage root
	exists, err := h.storage.Exists(r.Context(), path)
	if err != nil || !exists {
		response.NotFound(w, "Avatar not found")
		return
	}

	file, err := h.storage.Open(r.Context(), path)
	if err != nil {
		if !errors.Is(err, storage.ErrFileNotFound) {
			h.logger.ErrorContext(r.Context(), "failed to open avatar", slog.String("path", path), sl.Err(err))
		}
		response.NotFound(w, "Avatar not found")
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file); err != nil {
		h.logger.WarnContext(r.Context(), "failed to stream avatar", slog.String("path", path), sl.Err(err))
	}
}
