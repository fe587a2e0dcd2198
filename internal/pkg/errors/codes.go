package errors

import "net/http"

var (
	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrAgencyNotFound = New(
		"AGENCY_NOT_FOUND",
		"Agency not found",
		http.StatusNotFound,
	)

	ErrContentNotFound = New(
		"CONTENT_NOT_FOUND",
		"Content not found",
		http.StatusNotFound,
	)

	ErrInvalidSlug = New(
		"INVALID_SLUG",
		"Invalid slug value",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
