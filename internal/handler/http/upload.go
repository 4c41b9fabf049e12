// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/utils"
	"github.com/MyungJiwoo/career-log/models"
)

const (
	uploadFileField         = "file"
	uploadOriginalNameField = "originalName"

	// multipartMemory is how much of a form is kept in memory before parts
	// spill to temporary files.
	multipartMemory = 8 << 20

	// multipartOverhead allows for boundaries and the name field on top of
	// the file itself.
	multipartOverhead = 1 << 20
)

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, h.maxUploadSize))
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrFileRequired, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFileField)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrFileRequired, err))
		return
	}
	defer file.Close()

	if h.maxUploadSize > 0 && header.Size > h.maxUploadSize {
		writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, h.maxUploadSize))
		return
	}

	name := originalName(r.FormValue(uploadOriginalNameField), header)
	log.Debug().Str("name", name).Int64("size", header.Size).Msg("file upload received")

	fileURL, err := h.services.FileService.Upload(r.Context(), models.FileUpload{
		OriginalName: name,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Body:         file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FileUploadResponse{FileURL: fileURL}, http.StatusOK)
}

// originalName decodes the URL-encoded name field, falling back to the raw
// value when it is not valid escaping and to the multipart file name when
// the field is absent.
func originalName(field string, header *multipart.FileHeader) string {
	if field == "" {
		return header.Filename
	}
	decoded, err := url.PathUnescape(field)
	if err != nil {
		return field
	}
	return decoded
}
