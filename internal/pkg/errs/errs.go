// Package errs holds the domain error sentinels and thin wrappers over
// cockroachdb/errors. Usecases mark infrastructure failures with a sentinel
// so the handler layer can branch with errors.Is while the full cause chain
// stays attached for logging.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original chain intact.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark ties err to markErr so errors.Is(err, markErr) holds. A nil err
// collapses to the mark itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
