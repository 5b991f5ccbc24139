// Package quote fetches the iciba daily sentence.
package quote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/tidwall/gjson"
)

const DefaultURL = "https://open.iciba.com/dsapi/"

// ErrEmptyQuote is returned when the response has no content.
var ErrEmptyQuote = errors.New("daily sentence is empty")

// Quote is an English sentence with its Chinese note.
type Quote struct {
	Content string
	Note    string
	Date    string
}

func (q Quote) String() string {
	return fmt.Sprintf("每日一句：\n%s\n%s", q.Content, q.Note)
}

type Client struct {
	url  string
	http *http.Client
}

func New(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout, Transport: gzhttp.Transport(http.DefaultTransport)},
	}
}

func (c *Client) Today(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("quote request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote request: %s", resp.Status)
	}
	if !gjson.ValidBytes(body) {
		return Quote{}, errors.New("quote response is not json")
	}

	res := gjson.GetManyBytes(body, "content", "note", "dateline")
	q := Quote{Content: res[0].String(), Note: res[1].String(), Date: res[2].String()}
	if q.Content == "" {
		return Quote{}, ErrEmptyQuote
	}
	return q, nil
}
