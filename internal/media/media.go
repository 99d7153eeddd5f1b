// Package media turns uploaded files into resolvable image URLs. Files are
// pushed to a remote host when one is configured and reachable; otherwise the
// locally stored copy is served by the API process under /uploads.
package media

import (
	"context"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dheerajjx/portfolio/internal/logging"
)

// LocalPathPrefix is the URL path under which fallback files are served.
const LocalPathPrefix = "/uploads/"

const DefaultUploadTimeout = 60 * time.Second

// LocalFile is an upload already written to the upload directory.
type LocalFile struct {
	Path        string
	Filename    string
	ContentType string
}

// Asset is the stored form of an upload.
type Asset struct {
	URL      string
	RemoteID string // empty when served locally
}

// RemoteHost stores files durably and can remove them again.
type RemoteHost interface {
	Upload(ctx context.Context, folder string, file LocalFile) (Asset, error)
	Delete(ctx context.Context, remoteID string) error
}

type Options struct {
	PublicURL string
	Timeout   time.Duration
	MaxEdge   int
}

type Ingestor struct {
	host      RemoteHost
	publicURL string
	timeout   time.Duration
	maxEdge   int
	logger    logging.Logger
}

// NewIngestor builds an Ingestor. A nil host means every upload is served
// locally.
func NewIngestor(host RemoteHost, opts Options, logger logging.Logger) *Ingestor {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultUploadTimeout
	}
	return &Ingestor{
		host:      host,
		publicURL: strings.TrimRight(opts.PublicURL, "/"),
		timeout:   timeout,
		maxEdge:   opts.MaxEdge,
		logger:    logger.With("component", "media"),
	}
}

// Ingest never fails: a remote error, including timeout, yields the local URL.
func (i *Ingestor) Ingest(ctx context.Context, folder string, file LocalFile) Asset {
	if i.host == nil {
		return Asset{URL: i.LocalURL(file.Filename)}
	}

	upload := file
	if i.maxEdge > 0 {
		resized, ok, err := Downscale(file, i.maxEdge)
		if err != nil {
			i.logger.Warn(ctx, "downscale failed, uploading original", "file", file.Filename, "error", err)
		} else if ok {
			upload = resized
			defer os.Remove(resized.Path)
		}
	}

	uploadCtx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	asset, err := i.host.Upload(uploadCtx, folder, upload)
	if err != nil || asset.URL == "" {
		i.logger.Warn(ctx, "remote upload failed, falling back to local storage",
			"folder", folder, "file", file.Filename, "error", err)
		return Asset{URL: i.LocalURL(file.Filename)}
	}
	return asset
}

// IngestAll applies Ingest to each file independently, keeping submission
// order.
func (i *Ingestor) IngestAll(ctx context.Context, folder string, files []LocalFile) []Asset {
	assets := make([]Asset, 0, len(files))
	for _, f := range files {
		assets = append(assets, i.Ingest(ctx, folder, f))
	}
	return assets
}

// Remove deletes a remote asset. Failures are logged and swallowed.
func (i *Ingestor) Remove(ctx context.Context, remoteID string) {
	if remoteID == "" || i.host == nil {
		return
	}
	if err := i.host.Delete(ctx, remoteID); err != nil {
		i.logger.Warn(ctx, "could not remove remote asset", "remoteId", remoteID, "error", err)
	}
}

func (i *Ingestor) LocalURL(filename string) string {
	return i.publicURL + LocalPathPrefix + url.PathEscape(filename)
}

// URLs flattens assets into their URLs.
func URLs(assets []Asset) []string {
	out := make([]string, len(assets))
	for n, a := range assets {
		out[n] = a.URL
	}
	return out
}
