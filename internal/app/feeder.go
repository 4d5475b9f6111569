package app

import (
	"context"

	"github.com/five82/droidcat/internal/record"
	"github.com/five82/droidcat/internal/source"
)

type feedItem struct {
	rec record.Record
	err error
}

// startFeeder decodes records on a background goroutine so a blocking read
// does not keep Run from seeing cancellation. The channel is unbuffered, so
// at most one decoded record waits for the renderer.
func startFeeder(ctx context.Context, dec *source.Decoder) <-chan feedItem {
	feed := make(chan feedItem)
	go func() {
		defer close(feed)
		for {
			rec, err := dec.Next()
			select {
			case feed <- feedItem{rec: rec, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return feed
}
