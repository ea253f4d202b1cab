// Package upload sends product images to a public image host.
package upload

import (
	"context"
	"errors"
	"io"
)

var (
	ErrMissingAPIKey = errors.New("image host api key is not set")
	ErrEmptyImage    = errors.New("empty image")
)

// ProviderError is a rejection reported by the image host itself.
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Message
}

type Uploader interface {
	// Upload stores the image and returns its public URL.
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}
