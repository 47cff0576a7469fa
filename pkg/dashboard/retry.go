package dashboard

import (
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const maxRetryDelay = 60 * time.Second

// retryPolicy waits for the server's Retry-After when one was sent and
// falls back to exponential back-off otherwise.
type retryPolicy struct {
	exp        *backoff.ExponentialBackOff
	retryAfter time.Duration
}

func newRetryPolicy(base time.Duration) *retryPolicy {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = base
	exp.MaxInterval = maxRetryDelay
	exp.MaxElapsedTime = 0
	exp.Reset()
	return &retryPolicy{exp: exp, retryAfter: -1}
}

func (p *retryPolicy) NextBackOff() time.Duration {
	if p.retryAfter >= 0 {
		d := p.retryAfter
		p.retryAfter = -1
		if d > maxRetryDelay {
			d = maxRetryDelay
		}
		return d
	}
	return p.exp.NextBackOff()
}

func (p *retryPolicy) Reset() {
	p.exp.Reset()
	p.retryAfter = -1
}

// nextLink extracts the rel=next target of a Link header.
func nextLink(h http.Header) string {
	for _, header := range h.Values("Link") {
		for _, part := range strings.Split(header, ",") {
			segments := strings.Split(part, ";")
			if len(segments) < 2 {
				continue
			}
			target := strings.TrimSpace(segments[0])
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}
			for _, attr := range segments[1:] {
				attr = strings.ReplaceAll(strings.TrimSpace(attr), `"`, "")
				if strings.EqualFold(attr, "rel=next") {
					return target[1 : len(target)-1]
				}
			}
		}
	}
	return ""
}
