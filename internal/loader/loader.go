package loader

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/model"
)

// Loader drives a headless browser to a URL and extracts a sanitized DOM
// snapshot plus a live page handle for the dynamic checks.
type Loader struct {
	cfg    Config
	logger interfaces.Logger
}

// New constructs a Loader. Requires a non-nil logger.
func New(cfg Config, logger interfaces.Logger) (*Loader, error) {
	if logger == nil {
		return nil, errors.New("loader: nil logger; please pass a valid interfaces.Logger")
	}
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = DefaultConfig().NavigationTimeout
	}
	if cfg.NetworkIdleAfter <= 0 {
		cfg.NetworkIdleAfter = DefaultConfig().NetworkIdleAfter
	}
	return &Loader{
		cfg:    cfg,
		logger: logger.With(interfaces.Field{Key: "component", Value: "loader"}),
	}, nil
}

// waitNetworkIdle returns a channel that is closed once no request has been
// in flight for idleAfter. The timer also starts immediately so pages that
// issue no subresource requests still settle.
func waitNetworkIdle(ctx context.Context, idleAfter time.Duration) <-chan struct{} {
	idleChan := make(chan struct{})
	var activeReqs int32
	var timerMu sync.Mutex
	var timer *time.Timer
	var once sync.Once

	startTimer := func() {
		timerMu.Lock()
		defer timerMu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(idleAfter, func() {
			if atomic.LoadInt32(&activeReqs) == 0 {
				once.Do(func() { close(idleChan) })
			}
		})
	}

	chromedp.ListenTarget(ctx, func(ev any) {
		switch ev.(type) {
		case *network.EventRequestWillBeSent:
			atomic.AddInt32(&activeReqs, 1)
		case *network.EventLoadingFinished, *network.EventLoadingFailed:
			if atomic.AddInt32(&activeReqs, -1) <= 0 {
				startTimer()
			}
		}
	})

	startTimer()
	return idleChan
}

// Load navigates to pageURL, waits for the network to settle, serializes the
// rendered document and returns a Page. The caller owns the Page and must
// Close it on every exit path.
func (l *Loader) Load(ctx context.Context, pageURL string) (interfaces.Page, error) {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !l.cfg.Headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	pageCtx, pageCancel := chromedp.NewContext(allocCtx)
	release := func() {
		pageCancel()
		allocCancel()
	}

	idle := waitNetworkIdle(pageCtx, l.cfg.NetworkIdleAfter)

	navCtx, navCancel := context.WithTimeout(pageCtx, l.cfg.NavigationTimeout)
	defer navCancel()

	l.logger.Debug("navigating", interfaces.Field{Key: "url", Value: pageURL})
	if err := chromedp.Run(navCtx, network.Enable(), chromedp.Navigate(pageURL)); err != nil {
		release()
		return nil, &NavigationError{URL: pageURL, Category: classifyNavigation(err), Err: err}
	}

	// Idle wait is best effort within the navigation budget: pages that poll
	// forever still produce a snapshot of whatever has rendered.
	select {
	case <-idle:
	case <-navCtx.Done():
	}

	var title, outer string
	if err := chromedp.Run(pageCtx, chromedp.Title(&title), chromedp.OuterHTML("html", &outer)); err != nil {
		release()
		return nil, &ContentExtractionError{URL: pageURL, Err: err}
	}

	doc, err := l.parseSanitized(pageURL, outer)
	if err != nil {
		release()
		return nil, err
	}

	info := extractPageInfo(pageURL, title, doc)
	l.logger.Info("page loaded",
		interfaces.Field{Key: "url", Value: pageURL},
		interfaces.Field{Key: "title", Value: info.Title},
		interfaces.Field{Key: "size_bytes", Value: len(outer)})

	return &Page{
		url:     pageURL,
		info:    info,
		doc:     doc,
		ctx:     pageCtx,
		release: release,
	}, nil
}

// parseSanitized sanitizes and parses the serialized document, retrying once
// with the aggressive pass before giving up.
func (l *Loader) parseSanitized(pageURL, outer string) (*goquery.Document, error) {
	sanitized, err := sanitizeHTML(outer)
	if err == nil {
		if doc, perr := goquery.NewDocumentFromReader(strings.NewReader(sanitized)); perr == nil {
			return doc, nil
		} else {
			err = perr
		}
	}

	l.logger.Warn("parse failed, retrying with aggressive sanitization",
		interfaces.Field{Key: "url", Value: pageURL},
		interfaces.Field{Key: "error", Value: err.Error()})

	sanitized, err = aggressiveSanitizeHTML(outer)
	if err != nil {
		return nil, &ContentExtractionError{URL: pageURL, Err: err}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized))
	if err != nil {
		return nil, &ContentExtractionError{URL: pageURL, Err: err}
	}
	return doc, nil
}

func extractPageInfo(pageURL, title string, doc *goquery.Document) model.PageInfo {
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	lang, _ := doc.Find("html").Attr("lang")
	return model.PageInfo{
		URL:             pageURL,
		Title:           title,
		HasLang:         strings.TrimSpace(lang) != "",
		HasViewportMeta: doc.Find(`meta[name="viewport"]`).Length() > 0,
		FetchedAt:       time.Now().UTC(),
	}
}

// Page implements interfaces.Page over a live chromedp context.
type Page struct {
	url  string
	info model.PageInfo
	doc  *goquery.Document

	ctx     context.Context
	release func()

	evalMu    sync.Mutex
	closeOnce sync.Once
}

func (p *Page) URL() string                 { return p.url }
func (p *Page) Info() model.PageInfo        { return p.info }
func (p *Page) Document() *goquery.Document { return p.doc }

// Eval runs a self-contained JavaScript expression in the page context.
// Calls are serialized: the single live handle must not be queried
// concurrently.
func (p *Page) Eval(ctx context.Context, expression string, out any) error {
	p.evalMu.Lock()
	defer p.evalMu.Unlock()

	evalCtx := p.ctx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		evalCtx, cancel = context.WithDeadline(p.ctx, deadline)
		defer cancel()
	}
	return chromedp.Run(evalCtx, chromedp.Evaluate(expression, out))
}

// Close releases the browser context. Idempotent.
func (p *Page) Close() {
	p.closeOnce.Do(p.release)
}
