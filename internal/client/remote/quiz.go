package remote

import (
	"context"
	"net/http"
	"time"

	"github.com/dentinhoapp/dentinho/internal/client/models"
)

// QuizClient wraps the quiz service.
type QuizClient struct {
	base string
	hc   *http.Client
}

// NewQuizClient returns a client for the quiz service at base.
func NewQuizClient(base string, timeout time.Duration) *QuizClient {
	return &QuizClient{base: base, hc: newHTTPClient(timeout)}
}

// Questions fetches the full question list. The service owns the content;
// scoring happens entirely on the client.
func (c *QuizClient) Questions(ctx context.Context) ([]models.QuizQuestion, error) {
	var out []models.QuizQuestion
	if err := doJSON(ctx, c.hc, http.MethodGet, c.base+"/questions", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
