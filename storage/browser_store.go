package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"property-search/utils"
)

// BrowserStore keeps selection state in the window.localStorage of a real
// headless browser, so the values are exactly what the site's own pages see.
type BrowserStore struct {
	origin  string
	timeout time.Duration
	retry   *utils.RetryConfig
	logger  *utils.Logger

	mu          sync.Mutex
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
	opened      bool
}

// NewBrowserStore starts a headless browser. The origin page is loaded
// lazily on first access because it is often served by this same process.
func NewBrowserStore(origin, chromeBin string, retry *utils.RetryConfig, logger *utils.Logger) (*BrowserStore, error) {
	if origin == "" {
		return nil, fmt.Errorf("browser: origin is required")
	}
	if chromeBin == "" {
		chromeBin = findChromeBinary()
	}
	logger.Info("[browser] Using browser binary: %q, origin %s", chromeBin, origin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	// Suppress chromedp log noise
	ctx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	// Start the browser on the long-lived tab context; per-call timeouts are
	// derived from it later and must not own the browser process.
	if err := chromedp.Run(ctx); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("browser: start: %w", err)
	}

	return &BrowserStore{
		origin:      origin,
		timeout:     15 * time.Second,
		retry:       retry,
		logger:      logger,
		ctx:         ctx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
	}, nil
}

// ensureOpen navigates to the origin once. Callers hold b.mu.
func (b *BrowserStore) ensureOpen() error {
	if b.opened {
		return nil
	}
	err := b.retry.Do("browser-open", func() error {
		ctx, cancel := context.WithTimeout(b.ctx, b.timeout)
		defer cancel()
		return chromedp.Run(ctx, chromedp.Navigate(b.origin))
	})
	if err != nil {
		return fmt.Errorf("browser: open %s: %w", b.origin, err)
	}
	b.opened = true
	b.logger.Debug("[browser] Opened %s", b.origin)
	return nil
}

func (b *BrowserStore) Get(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ensureOpen(); err != nil {
		return nil, false, err
	}

	k, _ := json.Marshal(key)
	var res struct {
		Found bool   `json:"found"`
		Value string `json:"value"`
	}
	expr := fmt.Sprintf(`(function() {
		var v = window.localStorage.getItem(%s);
		return {found: v !== null, value: v === null ? "" : v};
	})()`, k)

	if err := b.run(chromedp.Evaluate(expr, &res)); err != nil {
		return nil, false, fmt.Errorf("browser: get %q: %w", key, err)
	}
	if !res.Found {
		return nil, false, nil
	}
	return []byte(res.Value), true, nil
}

func (b *BrowserStore) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ensureOpen(); err != nil {
		return err
	}

	k, _ := json.Marshal(key)
	v, _ := json.Marshal(string(value))
	var ok bool
	expr := fmt.Sprintf(`(function() {
		window.localStorage.setItem(%s, %s);
		return true;
	})()`, k, v)

	if err := b.run(chromedp.Evaluate(expr, &ok)); err != nil {
		return fmt.Errorf("browser: set %q: %w", key, err)
	}
	return nil
}

func (b *BrowserStore) run(action chromedp.Action) error {
	ctx, cancel := context.WithTimeout(b.ctx, b.timeout)
	defer cancel()
	return chromedp.Run(ctx, action)
}

// Close shuts the browser down.
func (b *BrowserStore) Close() error {
	b.cancelTab()
	b.cancelAlloc()
	return nil
}

// findChromeBinary locates a Chrome/Chromium binary.
func findChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
