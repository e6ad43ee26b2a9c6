package apperr

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-club-setup/internal/logging"
)

// Typed errors returned by the services.
type NotFoundError struct{ error }
type ValidationError struct{ error }
type UploadError struct{ error }

func NotFound(format string, args ...any) error {
	return &NotFoundError{fmt.Errorf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &ValidationError{fmt.Errorf(format, args...)}
}

// Upload wraps a storage failure.
func Upload(err error) error {
	if err == nil {
		return nil
	}
	return &UploadError{fmt.Errorf("failed to upload file: %w", err)}
}

func (e *NotFoundError) Unwrap() error   { return e.error }
func (e *ValidationError) Unwrap() error { return e.error }
func (e *UploadError) Unwrap() error     { return e.error }

// IsNotFound reports whether err describes a missing record.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFound *NotFoundError
	if stdErrors.As(err, &notFound) {
		return true
	}
	if stdErrors.Is(err, sql.ErrNoRows) {
		return true
	}
	var ge *goerrors.Error
	if stdErrors.As(err, &ge) {
		return ge.Category == goerrors.CategoryNotFound
	}
	return false
}

// Mappers returns the error mappers used to translate service errors.
func Mappers() []goerrors.ErrorMapper {
	return append([]goerrors.ErrorMapper{mapTypedErrors}, goerrors.DefaultErrorMappers()...)
}

func mapTypedErrors(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var notFound *NotFoundError
	if stdErrors.As(err, &notFound) {
		return withSource(goerrors.New(message(notFound, "resource not found"), goerrors.CategoryNotFound).
			WithCode(http.StatusNotFound).
			WithTextCode("NOT_FOUND"), notFound.error)
	}

	var validation *ValidationError
	if stdErrors.As(err, &validation) {
		return withSource(goerrors.New(message(validation, "validation failed"), goerrors.CategoryValidation).
			WithCode(http.StatusBadRequest).
			WithTextCode("BAD_REQUEST"), validation.error)
	}

	var upload *UploadError
	if stdErrors.As(err, &upload) {
		return withSource(goerrors.New(message(upload, "upload failed"), goerrors.CategoryExternal).
			WithCode(http.StatusBadRequest).
			WithTextCode("UPLOAD_FAILED"), upload.error)
	}

	if stdErrors.Is(err, sql.ErrNoRows) {
		return goerrors.New("resource not found", goerrors.CategoryNotFound).
			WithCode(http.StatusNotFound).
			WithTextCode("NOT_FOUND")
	}

	return nil
}

func message(err error, fallback string) string {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

func withSource(result *goerrors.Error, source error) *goerrors.Error {
	if source != nil {
		result.Source = source
	}
	return result
}

// ToGoError maps err into a go-errors value with status and text code set.
func ToGoError(ctx context.Context, err error) *goerrors.Error {
	if err == nil {
		err = stdErrors.New("unknown error")
	}

	mapped := goerrors.MapToError(err, Mappers())
	if mapped == nil {
		mapped = goerrors.New(err.Error(), goerrors.CategoryInternal)
	}

	if mapped.Code <= 0 {
		mapped.WithCode(StatusFor(mapped))
	}
	if strings.TrimSpace(mapped.TextCode) == "" {
		mapped.WithTextCode(goerrors.HTTPStatusToTextCode(mapped.Code))
	}
	if mapped.Timestamp.IsZero() {
		mapped.Timestamp = time.Now().UTC()
	}

	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		mapped.WithRequestID(requestID)
	}
	if correlationID := logging.CorrelationIDFromContext(ctx); correlationID != "" {
		mapped.WithMetadata(map[string]any{
			"correlation_id": correlationID,
		})
	}
	return mapped
}

// StatusFor resolves the HTTP status for a mapped error.
func StatusFor(err *goerrors.Error) int {
	if err == nil {
		return http.StatusInternalServerError
	}
	if err.Code > 0 {
		return err.Code
	}

	switch err.Category {
	case goerrors.CategoryValidation:
		return http.StatusUnprocessableEntity
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryNotFound, goerrors.CategoryRouting:
		return http.StatusNotFound
	case goerrors.CategoryConflict:
		return http.StatusConflict
	case goerrors.CategoryRateLimit:
		return http.StatusTooManyRequests
	case goerrors.CategoryBadInput, goerrors.CategoryCommand:
		return http.StatusBadRequest
	case goerrors.CategoryMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GraphQLExtensions renders the GraphQL error extensions for err.
func GraphQLExtensions(ctx context.Context, err error) map[string]any {
	mapped := ToGoError(ctx, err)
	ext := map[string]any{
		"code":     mapped.Code,
		"textCode": mapped.TextCode,
		"category": fmt.Sprint(mapped.Category),
	}
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		ext["requestId"] = requestID
	}
	return ext
}
