package keactrl

import (
	"net/http"
	"time"

	"github.com/apex/log"
)

// Option configures a Client
type Option interface {
	apply(*Client)
}

type optionFunc func(*Client)

func (of optionFunc) apply(c *Client) { of(c) }

// WithTimeout sets the request timeout, the default is 10 seconds
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *Client) {
		c.timeout = d
	})
}

// WithTLS configures certificate based transport security. caFile
// pins the agent certificate, certFile and keyFile together enable
// mutual TLS. Empty paths are skipped.
func WithTLS(caFile, certFile, keyFile string) Option {
	return optionFunc(func(c *Client) {
		c.caFile = caFile
		c.certFile = certFile
		c.keyFile = keyFile
	})
}

// WithInsecureSkipVerify disables certificate verification
func WithInsecureSkipVerify(insecure bool) Option {
	return optionFunc(func(c *Client) {
		c.insecureSkipVerify = insecure
	})
}

// WithServerName overrides the server name expected in the agent
// certificate.
func WithServerName(name string) Option {
	return optionFunc(func(c *Client) {
		c.serverName = name
	})
}

// WithLogger sets the logger used for request tracing
func WithLogger(l log.Interface) Option {
	return optionFunc(func(c *Client) {
		c.l = l
	})
}

// WithHTTPClient replaces the underlying HTTP client. TLS and timeout
// options are ignored when a custom client is supplied.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *Client) {
		c.httpClient = hc
	})
}
