package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Object-storage & upload errors
var (
	ErrObjectStoreUpload = errors.New("object store upload failed")
	ErrFileTooLarge      = errors.New("file too large")
	ErrUnsupportedFile   = errors.New("unsupported file type")
)

func NewObjectStoreError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrObjectStoreUpload,
		Details:    fmt.Sprintf("Object store %s failed", operation),
		Cause:      cause,
	}
}

func NewFileTooLargeError(maxBytes int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("File exceeds the maximum allowed size of %d bytes", maxBytes),
		Field:      "file",
	}
}

func NewUnsupportedFileError(gotType string, wantType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedFile,
		Details:    fmt.Sprintf("Got %s, only %s is accepted", gotType, wantType),
		Field:      "file",
	}
}
