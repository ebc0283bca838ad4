package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dentinhoapp/dentinho/internal/netx"
)

// ImagesClient handles profile-image storage through the backend's
// presigned-URL endpoints. The client stores only the opaque storage key;
// the bytes go straight to object storage.
type ImagesClient struct {
	base string
	hc   *http.Client
}

// NewImagesClient returns a client for the image endpoints at base.
func NewImagesClient(base string, timeout time.Duration) *ImagesClient {
	return &ImagesClient{base: base, hc: newHTTPClient(timeout)}
}

// Upload asks the backend for a presigned PUT URL, uploads data to it and
// returns the storage key to persist as the image reference.
func (c *ImagesClient) Upload(ctx context.Context, data []byte) (string, error) {
	var out struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := doJSON(ctx, c.hc, http.MethodPost, c.base+"/images/upload-url", "", nil, &out); err != nil {
		return "", err
	}

	if err := netx.UploadToPresignedURL(ctx, out.URL, data); err != nil {
		return "", err
	}
	return out.Key, nil
}

// ResolveURL exchanges a stored image reference for a temporary GET URL.
func (c *ImagesClient) ResolveURL(ctx context.Context, key string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	u := c.base + "/images/url?key=" + url.QueryEscape(key)
	if err := doJSON(ctx, c.hc, http.MethodGet, u, "", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
