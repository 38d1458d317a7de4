package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrUnresolvableSport     = errors.New("unresolvable sport")
	ErrUpstreamRequestFailed = errors.New("upstream request failed")
)

// UpstreamError reports a non-2xx response from the sports data provider.
type UpstreamError struct {
	StatusCode int
	URL        string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed: status=%d url=%s", e.StatusCode, e.URL)
}

func (e *UpstreamError) Is(target error) bool {
	if target == ErrUpstreamRequestFailed {
		return true
	}
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsUpstreamNotFound reports whether err carries an upstream 404.
func IsUpstreamNotFound(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound
}
