package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dentinhoapp/dentinho/internal/client/models"
)

// AdviceClient wraps the advice service. The read side (Get) is public;
// the admin CRUD requires a bearer token obtained with AdminLogin.
type AdviceClient struct {
	base  string
	hc    *http.Client
	token string
}

// NewAdviceClient returns a client for the advice service at base
// (e.g. "https://api-dentinho-feliz.onrender.com").
func NewAdviceClient(base string, timeout time.Duration) *AdviceClient {
	return &AdviceClient{base: base, hc: newHTTPClient(timeout)}
}

// Get fetches one piece of advice for the category. Returns
// common.ErrNotFound when the category has no advice.
func (c *AdviceClient) Get(ctx context.Context, category string) (string, error) {
	var out struct {
		Advice string `json:"advice"`
	}
	err := doJSON(ctx, c.hc, http.MethodGet, c.base+"/advice/"+category, "", nil, &out)
	if err != nil {
		return "", err
	}
	return out.Advice, nil
}

// AdminLogin exchanges admin credentials for a bearer token and keeps it
// for subsequent CRUD calls.
func (c *AdviceClient) AdminLogin(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := doJSON(ctx, c.hc, http.MethodPost, c.base+"/admin/login", "", body, &out); err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

// List returns every advice entry, all categories mixed.
func (c *AdviceClient) List(ctx context.Context) ([]models.Advice, error) {
	var out []models.Advice
	if err := doJSON(ctx, c.hc, http.MethodGet, c.base+"/advice", c.token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a new advice entry.
func (c *AdviceClient) Create(ctx context.Context, category, advice string) error {
	body := map[string]string{"category": category, "advice": advice}
	return doJSON(ctx, c.hc, http.MethodPost, c.base+"/advice", c.token, body, nil)
}

// Update replaces the category/text of an existing entry.
func (c *AdviceClient) Update(ctx context.Context, id int64, category, advice string) error {
	body := map[string]string{"category": category, "advice": advice}
	url := fmt.Sprintf("%s/advice/%d", c.base, id)
	return doJSON(ctx, c.hc, http.MethodPut, url, c.token, body, nil)
}

// Delete removes an entry by id.
func (c *AdviceClient) Delete(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/advice/%d", c.base, id)
	return doJSON(ctx, c.hc, http.MethodDelete, url, c.token, nil, nil)
}
