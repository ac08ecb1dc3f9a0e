package trg

import (
	"errors"
)

var (
	// ErrNoResults is returned when the first result page never renders a
	// result marker within the bounded wait. It is a distinct outcome,
	// not an automation failure.
	ErrNoResults = errors.New("no results found")

	// ErrTooManyPages is returned when the optional pagination cap is
	// enabled and the crawl exceeds it.
	ErrTooManyPages = errors.New("pagination exceeded configured max pages")
)
