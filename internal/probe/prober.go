package probe

import (
	"context"
	"log/slog"

	"smartsubs/internal/logging"
)

// SubtitleLister exposes the downloader capability the prober needs.
type SubtitleLister interface {
	ListSubs(ctx context.Context, url string) (string, error)
}

// Prober queries the downloader for available subtitle tracks and tests
// the listing against the language patterns.
type Prober struct {
	lister  SubtitleLister
	matcher *Matcher
	logger  *slog.Logger
}

// New constructs a prober. A nil logger is replaced with a no-op logger.
func New(lister SubtitleLister, matcher *Matcher, logger *slog.Logger) *Prober {
	return &Prober{
		lister:  lister,
		matcher: matcher,
		logger:  logging.NewComponentLogger(logger, "probe"),
	}
}

// Probe runs the listing command and scans its output. A failed listing
// command is deliberately treated the same as an empty listing: both
// yield a negative result and send the run down the generation path.
func (p *Prober) Probe(ctx context.Context, url string) Result {
	listing, err := p.lister.ListSubs(ctx, url)
	if err != nil {
		p.logger.Debug("subtitle listing command failed, scanning partial output",
			logging.Error(err),
		)
	}
	result := p.matcher.Scan(listing)
	if result.Found {
		p.logger.Info("matching subtitle track found", logging.String("track", result.Line))
	} else {
		p.logger.Info("no matching subtitle track")
	}
	return result
}
