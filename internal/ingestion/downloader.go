package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"mlops-pipeline/internal/errs"
)

// Downloader fetches the resource at url and streams it into w
type Downloader interface {
	Download(ctx context.Context, url string, w io.Writer) (int64, error)
}

// HTTPDownloader performs a single GET per download with no retry.
// There is no client-side timeout; cancellation comes from ctx.
type HTTPDownloader struct {
	client *http.Client
}

// NewHTTPDownloader creates a downloader around client, or http.DefaultClient when client is nil
func NewHTTPDownloader(client *http.Client) *HTTPDownloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPDownloader{client: client}
}

func (d *HTTPDownloader) Download(ctx context.Context, url string, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, errs.E(errs.Transport, "download", url, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, errs.E(errs.Transport, "download", url, err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, errs.E(errs.Transport, "download", url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body := &bodyReader{r: resp.Body}
	n, err := io.Copy(w, body)
	if err != nil {
		if body.err != nil {
			return n, errs.E(errs.Transport, "download", url, err)
		}
		return n, errs.FromFS("download", url, err)
	}
	return n, nil
}

// bodyReader remembers read-side failures so they can be told apart from write failures
type bodyReader struct {
	r   io.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF {
		b.err = err
	}
	return n, err
}
