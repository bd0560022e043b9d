// Package webfetch retrieves commentary pages for study links and pulls
// out their titles. Failures here are cosmetic: callers warn and move
// on, the schedule itself never depends on the network.
package webfetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	retryablehttp "github.com/hashicorp/go-retryablehttp"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:83.0) Gecko/20100101 Firefox/83.0"

// Result describes one fetched commentary page.
type Result struct {
	URL        string
	StatusCode int
	Title      string
}

// NewClient returns the retrying HTTP client used for page fetches.
func NewClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil
	return client
}

// FetchTitle GETs url and returns its page title, falling back to the
// first h1 when the title tag is empty.
func FetchTitle(client *retryablehttp.Client, url string) (*Result, error) {
	req, err := retryablehttp.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	res := &Result{URL: url, StatusCode: resp.StatusCode}
	if resp.StatusCode != 200 {
		return res, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return res, err
	}

	res.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if res.Title == "" {
		res.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	return res, nil
}
