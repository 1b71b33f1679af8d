// Package fetch retrieves the register index page and its PDF attachments
// over HTTP, politely: requests are paced through a rate limiter and the
// index page's links are discovered with an HTML tokenizer rather than
// string matching.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// MaxDownloadSizeBytes bounds how much of any single response body is
// read, guarding against a misbehaving or hostile server.
const MaxDownloadSizeBytes = 64 << 20 // 64 MiB

// Fetcher downloads the index page and PDF attachments, every request
// paced by one token-bucket rate limiter.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// New builds a Fetcher. proxyURL may be empty for no proxy. requestsPerSecond
// and burst configure the rate limiter; pass rate.Inf to disable pacing (a
// zero rate admits only the first burst requests).
func New(proxyURL string, requestsPerSecond rate.Limit, burst int) (*Fetcher, error) {
	transport := &http.Transport{}
	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("fetch: invalid proxy URL: %w", err)
		}
		transport.Proxy = http.ProxyURL(parsed)
	}

	return &Fetcher{
		client:  &http.Client{Transport: transport},
		limiter: rate.NewLimiter(requestsPerSecond, burst),
	}, nil
}

// get performs a rate-limited GET and returns the body, capped at
// MaxDownloadSizeBytes.
func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("fetch: rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: building request for %s: %w", rawURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: requesting %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: %s returned %s", rawURL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSizeBytes))
	if err != nil {
		return nil, fmt.Errorf("fetch: reading body of %s: %w", rawURL, err)
	}
	return data, nil
}

// Index downloads sourceURL and returns the absolute URLs of every PDF
// attachment linked from it.
func (f *Fetcher) Index(ctx context.Context, sourceURL string) ([]string, error) {
	body, err := f.get(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: invalid source URL: %w", err)
	}

	return discoverPDFLinks(body, base)
}

// PDF downloads a single PDF attachment by URL.
func (f *Fetcher) PDF(ctx context.Context, pdfURL string) ([]byte, error) {
	return f.get(ctx, pdfURL)
}

// discoverPDFLinks walks body's anchor tags and collects every href that
// resolves (against base) to a URL ending in ".pdf".
func discoverPDFLinks(body []byte, base *url.URL) ([]string, error) {
	tokenizer := html.NewTokenizer(strings.NewReader(string(body)))
	var links []string

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); err != io.EOF {
				return links, fmt.Errorf("fetch: parsing index HTML: %w", err)
			}
			return links, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key != "href" {
					continue
				}
				if resolved, ok := resolvePDFLink(base, attr.Val); ok {
					links = append(links, resolved)
				}
			}
		}
	}
}

func resolvePDFLink(base *url.URL, href string) (string, bool) {
	if !strings.HasSuffix(strings.ToLower(href), ".pdf") {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}
