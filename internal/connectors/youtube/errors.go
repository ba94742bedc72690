package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// YouTube API errors. WrapError joins them with domain.ErrUpstreamFetch.
var (
	// ErrUnauthorized indicates an invalid API key.
	ErrUnauthorized = errors.New("youtube: unauthorised (invalid API key)")

	// ErrForbidden indicates the key may not call the API.
	ErrForbidden = errors.New("youtube: forbidden")

	// ErrQuotaExceeded indicates the daily quota is spent.
	ErrQuotaExceeded = errors.New("youtube: quota exceeded")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("youtube: rate limit exceeded")

	// ErrBadRequest indicates the API rejected the request parameters.
	ErrBadRequest = errors.New("youtube: bad request")

	// ErrTooManyIDs indicates a batch larger than the API accepts.
	ErrTooManyIDs = errors.New("youtube: too many video ids")
)

// quotaReasons are googleapi error reasons that mean the quota is spent.
var quotaReasons = map[string]bool{
	"quotaExceeded":      true,
	"dailyLimitExceeded": true,
}

// IsUnauthorized returns true if the error indicates an invalid key.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusUnauthorized
	}
	return false
}

// IsQuotaExceeded returns true if the error indicates a spent quota.
func IsQuotaExceeded(err error) bool {
	if errors.Is(err, ErrQuotaExceeded) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusForbidden && hasQuotaReason(gerr)
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests
	}
	return false
}

// WrapError converts a YouTube API error into a domain error.
// Every result matches domain.ErrUpstreamFetch with errors.Is.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("%w: youtube: %w", domain.ErrUpstreamFetch, err)
	}

	var kind error
	switch gerr.Code {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusForbidden:
		kind = ErrForbidden
		if hasQuotaReason(gerr) {
			kind = ErrQuotaExceeded
		}
	case http.StatusTooManyRequests:
		kind = ErrRateLimited
	default:
		return fmt.Errorf("%w: youtube: %w", domain.ErrUpstreamFetch, err)
	}

	return fmt.Errorf("%w: %w: %s", domain.ErrUpstreamFetch, kind, gerr.Message)
}

// countsAsFailure reports whether err counts against the circuit breaker.
// Cancellation and rejected parameters are not counted.
func countsAsFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrTooManyIDs):
		return false
	default:
		return true
	}
}

// retryAfter returns the Retry-After header of a 429 response in seconds.
func retryAfter(err error) int {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Header == nil {
		return 0
	}
	secs, convErr := strconv.Atoi(gerr.Header.Get("Retry-After"))
	if convErr != nil {
		return 0
	}
	return secs
}

func hasQuotaReason(gerr *googleapi.Error) bool {
	for _, item := range gerr.Errors {
		if quotaReasons[item.Reason] {
			return true
		}
	}
	return false
}
