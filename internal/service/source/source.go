// Package source provides line sources for table input. A source fetches
// the raw document from a local file or an HTTP URL and splits it into
// comma separated fields, one slice per line.
package source

import (
	"strings"

	domain "FinTab/internal/domain/repository"
	pkghttp "FinTab/pkg/http"
)

// ForPath selects a source by path shape. Anything with an http or https
// scheme is fetched over the network, everything else is read from disk.
func ForPath(path string, client *pkghttp.Client) domain.LineSource {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return NewHTTPSource(path, client)
	}
	return NewFileSource(path)
}
