package tpb

import "fmt"

// FetchError is returned when main.js could not be retrieved, either because
// the request failed outright or because the mirror answered with a non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Err.Error())
	}
	return fmt.Sprintf("fetch %s: unexpected status %s", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MalformedInputError is returned when a subcategory code shows up before any
// top-level category it could belong to.
type MalformedInputError struct {
	// Index is the position of the offending match in document order.
	Index int
	Code  int
	Name  string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf(
		"malformed input: subcategory %d (%q) at match %d has no parent category",
		e.Code, e.Name, e.Index,
	)
}
