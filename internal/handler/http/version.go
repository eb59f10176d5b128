// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/internal/utils"
	"github.com/MKhiriev/go-version-gen/models"
	"github.com/go-chi/chi/v5"
)

// contentTypes maps each artifact format to the media type it is served with.
var contentTypes = map[models.Format]string{
	models.FormatJSON: "application/json; charset=utf-8",
	models.FormatJS:   "text/javascript; charset=utf-8",
	models.FormatText: "text/plain; charset=utf-8",
	models.FormatTS:   "application/typescript; charset=utf-8",
	models.FormatYAML: "application/yaml; charset=utf-8",
}

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(info.BuildVersion()))
}

// getVersion returns the record of the first generation cycle, running it
// if nothing has been generated yet.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.VersionService.Generate(r.Context())
	if err != nil {
		log.Err(err).Msg("version generation failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, result.Record, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write version record")
	}
}

func (h *Handler) refreshVersion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.VersionService.Regenerate(r.Context())
	if err != nil {
		log.Err(err).Msg("version regeneration failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write generation result")
	}
}

func (h *Handler) getCacheStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.VersionService.CacheStatus(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write cache status")
	}
}

func (h *Handler) clearCache(w http.ResponseWriter, r *http.Request) {
	h.services.VersionService.ClearCache(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getArtifact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ext := chi.URLParam(r, "ext")

	format, err := models.ParseFormat(ext)
	if err != nil {
		log.Debug().Str("ext", ext).Msg("unsupported artifact requested")
		writeError(w, err)
		return
	}

	content, err := h.services.VersionService.Render(r.Context(), format)
	if err != nil {
		log.Err(err).Str("format", format.String()).Msg("failed to render artifact")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
