package keactrl

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/spf13/viper"

	"github.com/hhubb22/kea-conf-generate/internal/settings"
)

// DefaultTimeout is used when no WithTimeout option is given
const DefaultTimeout = 10 * time.Second

// Client talks to a Kea control agent over HTTP
type Client struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	l          log.Interface

	caFile             string
	certFile           string
	keyFile            string
	insecureSkipVerify bool
	serverName         string
}

// New creates a client for the control agent at rawurl. The scheme
// may be omitted, it defaults to http, or to https when certificate
// options are configured.
func New(rawurl string, opts ...Option) (*Client, error) {
	if rawurl == "" {
		return nil, errors.New("control agent URL is empty")
	}

	c := &Client{
		timeout: DefaultTimeout,
		l:       log.Log,
	}

	for _, opt := range opts {
		opt.apply(c)
	}

	rawurl = strings.TrimRight(rawurl, "/")
	if !strings.Contains(rawurl, "://") {
		if c.caFile != "" || c.certFile != "" {
			rawurl = "https://" + rawurl
		} else {
			rawurl = "http://" + rawurl
		}
	}

	if _, err := url.Parse(rawurl); err != nil {
		return nil, err
	}
	c.url = rawurl

	if c.httpClient == nil {
		hc, err := c.buildHTTPClient()
		if err != nil {
			return nil, err
		}
		c.httpClient = hc
	}

	return c, nil
}

// NewFromEnv creates a client configured from the environment, see
// internal/settings for the recognized variables.
func NewFromEnv() (*Client, error) {
	viper.AutomaticEnv()

	opts := []Option{
		WithTLS(
			viper.GetString(settings.KEA_CTRL_TLS_CA_FILE),
			viper.GetString(settings.KEA_CTRL_TLS_CERT_FILE),
			viper.GetString(settings.KEA_CTRL_TLS_KEY_FILE),
		),
		WithInsecureSkipVerify(viper.GetBool(settings.KEA_CTRL_TLS_INSECURE)),
		WithServerName(viper.GetString(settings.KEA_CTRL_TLS_SERVER_NAME)),
	}

	if secs := viper.GetInt(settings.KEA_CTRL_TIMEOUT_SECONDS); secs > 0 {
		opts = append(opts, WithTimeout(time.Duration(secs)*time.Second))
	}

	return New(viper.GetString(settings.KEA_CTRL_URL), opts...)
}

func (c *Client) buildHTTPClient() (*http.Client, error) {
	hc := &http.Client{Timeout: c.timeout}

	tlsNeeded := c.caFile != "" ||
		(c.certFile != "" && c.keyFile != "") ||
		c.insecureSkipVerify ||
		c.serverName != ""
	if !tlsNeeded {
		return hc, nil
	}

	// #nosec G402 -- InsecureSkipVerify is an explicit opt-in for test setups
	tlsCfg := &tls.Config{
		InsecureSkipVerify: c.insecureSkipVerify,
		ServerName:         c.serverName,
	}

	if c.caFile != "" {
		pem, err := os.ReadFile(c.caFile)
		if err != nil {
			return nil, err
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", c.caFile)
		}
		tlsCfg.RootCAs = pool
	}

	if c.certFile != "" && c.keyFile != "" {
		cert, err := tls.LoadX509KeyPair(c.certFile, c.keyFile)
		if err != nil {
			return nil, err
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}

	hc.Transport = &http.Transport{TLSClientConfig: tlsCfg}

	return hc, nil
}

// Send posts a command to the control agent and returns the first
// response. The agent answers with a list holding one response per
// addressed service.
func (c *Client) Send(ctx context.Context, cmd Request) (Response, error) {
	body, err := json.Marshal(cmd)
	if err != nil {
		return Response{}, err
	}

	c.l.Debugf("sending %s to %s", cmd.Command, c.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/", bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("control agent returned %s", resp.Status)
	}

	var responses []Response
	if err := json.NewDecoder(resp.Body).Decode(&responses); err != nil {
		return Response{}, err
	}

	if len(responses) == 0 {
		return Response{}, errors.New("empty response")
	}

	return responses[0], nil
}
