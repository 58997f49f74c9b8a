package feed

import "fmt"

// FetchError means the upstream HTTP request failed or returned non-2xx.
// Status and body are kept for diagnostics at the HTTP boundary.
type FetchError struct {
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: upstream returned %d: %s", e.URL, e.Status, e.Body)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means a whole document could not be parsed. Individual malformed
// records inside an otherwise valid document are skipped, not fatal.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse feed: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// AuthError means an ERP token request failed, or the token expired and the
// single refresh-and-retry attempt did not recover.
type AuthError struct {
	Status int
	Body   string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("erp auth: %v", e.Err)
	}
	return fmt.Sprintf("erp auth: status %d: %s", e.Status, e.Body)
}

func (e *AuthError) Unwrap() error { return e.Err }
