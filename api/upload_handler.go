package api

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
)

const (
	// maxResumeBytes caps resume uploads at 10MB.
	maxResumeBytes = 10 * 1024 * 1024
	resumeMIMEType = "application/pdf"
)

// resumeUploader is the slice of the object-store client the handler
// consumes.
type resumeUploader interface {
	Upload(ctx context.Context, filename string, body io.Reader, contentType string) (string, error)
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  resumeUploader
}

func newUploadHandler(uploader resumeUploader, exposeDetails bool) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger, exposeDetails),
		logger:    logger,
		uploader:  uploader,
	}
}

// UploadResponse carries the public URL of a stored blob.
type UploadResponse struct {
	URL string `json:"url"`
}

// uploadResume accepts a multipart PDF under the "file" field, stores it in
// the object store and returns the public URL. The admin flow persists that
// URL onto the profile record with a separate PUT. Contents are never
// inspected; only declared type and size are checked.
func (h uploadHandler) uploadResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewInternalError("object storage is not configured"))
			return
		}

		// Leave headroom above the limit so an oversized file yields the
		// size-limit error rather than a truncated-body failure.
		r.Body = http.MaxBytesReader(w, r.Body, maxResumeBytes*2)
		if err := r.ParseMultipartForm(maxResumeBytes * 2); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError(errs.FieldError{
				Field:   "file",
				Message: "is required",
			}))
			return
		}
		defer file.Close()

		if header.Size > maxResumeBytes {
			h.responder.WriteError(w, errs.NewFileTooLargeError(maxResumeBytes))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType != resumeMIMEType {
			h.responder.WriteError(w, errs.NewUnsupportedFileError(contentType, resumeMIMEType))
			return
		}

		url, err := h.uploader.Upload(r.Context(), header.Filename, file, contentType)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("url", url).Int64("size", header.Size).Msg("Resume uploaded")
		h.responder.WriteJSON(w, UploadResponse{URL: url})
	}
}
