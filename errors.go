package devappscraper

import "errors"

// Sentinel errors returned by Scraper.Run.
var (
	// ErrSourceUnreachable is returned when the register index page could
	// not be fetched at all.
	ErrSourceUnreachable = errors.New("devappscraper: source page unreachable")

	// ErrNoLinksFound is returned when the index page was fetched but no
	// PDF attachment links were discovered on it.
	ErrNoLinksFound = errors.New("devappscraper: no PDF links discovered on source page")

	// ErrPDFDecodeFailed wraps a failure from the supplied Decoder or from
	// walking a decoded page. Per the core's error handling policy this
	// aborts only the current PDF; Run continues with the next one.
	ErrPDFDecodeFailed = errors.New("devappscraper: PDF decode failed")
)

// IsRetryable reports whether err indicates a transient condition worth
// retrying the whole run for.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrSourceUnreachable)
}

// IsSkippable reports whether err indicates a single-PDF failure that does
// not affect any other PDF in the run.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrPDFDecodeFailed)
}
