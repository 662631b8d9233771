package source

import (
	"context"
	"fmt"
	"net/http"

	domain "FinTab/internal/domain/repository"
	pkghttp "FinTab/pkg/http"
	"FinTab/pkg/util"
)

// HTTPSource fetches table input from an HTTP URL.
type HTTPSource struct {
	url    string
	client *pkghttp.Client
}

// NewHTTPSource creates an HTTP backed line source. A nil client gets the
// package defaults.
func NewHTTPSource(url string, client *pkghttp.Client) *HTTPSource {
	if client == nil {
		client = pkghttp.NewClient()
	}
	return &HTTPSource{url: url, client: client}
}

// Fetch downloads the document and splits it into lines and fields.
func (s *HTTPSource) Fetch(ctx context.Context) ([][]string, error) {
	var body []byte
	err := s.client.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method: http.MethodGet,
		URL:    s.url,
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}

	return util.Tokenize(body), nil
}

// Origin returns the URL for logging.
func (s *HTTPSource) Origin() string {
	return s.url
}

var _ domain.LineSource = (*HTTPSource)(nil)
