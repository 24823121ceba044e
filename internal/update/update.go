// Package update implements the launcher's optional update check. This is
// the only part of the converter that touches the network; failures are
// reported to the caller and never abort a conversion.
package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Release describes the latest published converter release.
type Release struct {
	Version string `json:"version"`
	URL     string `json:"url"`
}

// Checker queries a release endpoint.
type Checker struct {
	client *resty.Client
	url    string
}

// NewChecker creates a checker with a hard request timeout.
func NewChecker(url string, timeout time.Duration) *Checker {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Checker{client: client, url: url}
}

// Latest fetches the latest release descriptor.
func (c *Checker) Latest(ctx context.Context) (*Release, error) {
	var rel Release
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&rel).
		ForceContentType("application/json").
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("update check failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("update check failed: %s", resp.Status())
	}
	if rel.Version == "" {
		return nil, fmt.Errorf("update check: no version in response")
	}
	return &rel, nil
}

// IsNewer reports whether latest is a strictly newer dotted version than
// current. A leading "v" is ignored; missing segments count as zero.
func IsNewer(current, latest string) bool {
	cur := segments(current)
	lat := segments(latest)
	n := len(cur)
	if len(lat) > n {
		n = len(lat)
	}
	for i := 0; i < n; i++ {
		c, l := 0, 0
		if i < len(cur) {
			c = cur[i]
		}
		if i < len(lat) {
			l = lat[i]
		}
		if l != c {
			return l > c
		}
	}
	return false
}

func segments(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	parts := strings.Split(v, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			n = 0
		}
		out = append(out, n)
	}
	return out
}
