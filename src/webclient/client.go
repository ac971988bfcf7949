package webclient

import (
	"net/http"
	"time"
)

// NewDefault returns an HTTP client with a hard overall timeout. Every
// outbound surface in the pipeline (search, page fetches, generation) gets
// its own client so one slow collaborator cannot starve the others.
func NewDefault(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
