// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Service copies textual data to the system clipboard using
// github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard facility exists on this system.
func Available() bool {
	return !clipboard.Unsupported
}
