package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/khoahotran/portfolio-api/internal/application/service"
)

const defaultTimeout = 10 * time.Second

type revalidateClient struct {
	url    string
	client *http.Client
}

// NewRevalidateClient posts content events as JSON to url. Trace context is
// propagated in the request headers.
func NewRevalidateClient(url string) (service.Revalidator, error) {
	if url == "" {
		return nil, fmt.Errorf("revalidate url is not configured")
	}
	return &revalidateClient{
		url: url,
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

func (c *revalidateClient) Revalidate(ctx context.Context, evt service.ContentEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal content event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build revalidate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post revalidate request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("revalidate endpoint answered %d", resp.StatusCode)
	}
	return nil
}
