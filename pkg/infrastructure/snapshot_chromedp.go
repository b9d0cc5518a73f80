package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// ChromedpSnapshotter renders finished pages to PNG thumbnails through
// headless Chrome.
type ChromedpSnapshotter struct {
	chromePath string
}

func NewChromedpSnapshotter(chromePath string) *ChromedpSnapshotter {
	return &ChromedpSnapshotter{chromePath: chromePath}
}

func (r *ChromedpSnapshotter) RenderHTMLToPNG(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	// ensure Chrome starts
	ctx2, cancel2 := context.WithTimeout(cctx, 60*time.Second)
	defer cancel2()

	// the page references no external assets (inline styles), so a bare
	// file:// navigation is enough
	tmpDir, err := os.MkdirTemp("/tmp", "portfolio-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pngBuf []byte
	htmlURL := "file://" + htmlPath
	err = chromedp.Run(ctx2,
		emulation.SetDeviceMetricsOverride(1280, 800, 1, false),
		chromedp.Navigate(htmlURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&pngBuf, 90),
	)
	if err != nil {
		return nil, err
	}
	return pngBuf, nil
}
