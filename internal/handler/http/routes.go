// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(compressionLevel, "application/json"))

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Post("/refresh-token", h.refreshToken)
		r.Post("/logout", h.logout)
		r.Post("/verify-token", h.verifyToken)

		r.With(h.auth).Delete("/delete/{userId}", h.deleteUser)
	})

	router.Route("/api/appliedJob", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listAppliedJobs)
		r.Post("/", h.createAppliedJob)
		r.Get("/statistics", h.statistics)
		r.Get("/{id}", h.getAppliedJob)
		r.Patch("/{id}", h.updateAppliedJob)
		r.Delete("/{id}", h.deleteAppliedJob)
		r.Patch("/{jobId}/stages/{stageId}", h.updateStageStatus)
	})

	router.With(h.auth).Post("/api/upload/file", h.uploadFile)

	if h.filesDir != "" {
		router.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(h.filesDir))))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
