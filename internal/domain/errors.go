package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// UpstreamError represents a failed call to one of the Steam services:
// either a non-OK status or a transport failure described by Message.
type UpstreamError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream %s failed: %s", e.Endpoint, e.Message)
	}
	return fmt.Sprintf("upstream %s returned status %d", e.Endpoint, e.Status)
}

// Is enables errors.Is matching on UpstreamError.
func (e UpstreamError) Is(target error) bool {
	_, ok := target.(UpstreamError)
	if ok {
		return true
	}
	_, ok = target.(*UpstreamError)
	return ok
}

// ErrUpstream is the sentinel error for upstream failures.
var ErrUpstream = UpstreamError{}

// ErrMissingAPIKey means the caller supplied no Steam Web API key.
// This is a configuration fault of the whole call, never a per-account
// one.
var ErrMissingAPIKey = fmt.Errorf("steam api key not configured")
