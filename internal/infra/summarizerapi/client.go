package summarizerapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yanqian/linkrelay/internal/domain/relay"
	apperrors "github.com/yanqian/linkrelay/pkg/errors"
)

const (
	defaultConnectTimeout = 30 * time.Second
	defaultReadTimeout    = 120 * time.Second
	defaultMaxBodyBytes   = 1 << 20
)

// Config describes how to reach the summarization endpoint.
type Config struct {
	Endpoint       string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	MaxBodyBytes   int
}

// Client posts chat messages to the summarization endpoint.
type Client struct {
	endpoint string
	resty    *resty.Client
}

// NewClient builds a client that never retries and opens one connection per call.
func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("invalid summarizer endpoint %q", endpoint), err)
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}
	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: readTimeout,
		DisableKeepAlives:     true,
	}

	client := resty.New().
		SetTransport(transport).
		SetTimeout(connectTimeout + readTimeout).
		SetRetryCount(0).
		SetResponseBodyLimit(maxBodyBytes).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{endpoint: endpoint, resty: client}, nil
}

// Summarize issues a single POST. Bodies are decoded for 200 and 400 only;
// any other status is returned with an empty body and no error. A body over
// the configured limit is reported as malformed without being buffered.
func (c *Client) Summarize(ctx context.Context, req relay.SummarizeRequest) (relay.UpstreamResult, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetBody(req).
		Post(c.endpoint)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		if resp != nil && resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusBadRequest {
			return relay.UpstreamResult{Status: resp.StatusCode()}, nil
		}
		return relay.UpstreamResult{}, apperrors.Wrap(apperrors.CodeUpstreamMalformed, "summarizer response exceeds body limit", err)
	}
	if err != nil {
		return relay.UpstreamResult{}, classifyTransportError(err)
	}

	result := relay.UpstreamResult{Status: resp.StatusCode()}
	if result.Status != http.StatusOK && result.Status != http.StatusBadRequest {
		return result, nil
	}

	if err := json.Unmarshal(resp.Body(), &result.Body); err != nil {
		return relay.UpstreamResult{}, apperrors.Wrap(apperrors.CodeUpstreamMalformed, "decode summarizer response", err)
	}
	return result, nil
}

type transportRule struct {
	code    string
	message string
	match   func(err error) bool
}

// Evaluated in order, first match wins. Typed checks come before the text
// signatures so wrapped errors from proxies still classify.
var transportRules = []transportRule{
	{code: apperrors.CodeUpstreamTimeout, message: "summarizer timed out", match: isTimeout},
	{code: apperrors.CodeUpstreamUnreachable, message: "summarizer unreachable", match: isUnreachable},
	{code: apperrors.CodeUpstreamTimeout, message: "summarizer timed out", match: containsAny("timeout", "deadline exceeded", "timed out")},
	{code: apperrors.CodeUpstreamUnreachable, message: "summarizer unreachable", match: containsAny("connection refused", "no such host", "network is unreachable", "no route to host")},
}

func classifyTransportError(err error) error {
	for _, rule := range transportRules {
		if rule.match(err) {
			return apperrors.Wrap(rule.code, rule.message, err)
		}
	}
	return apperrors.Wrap(apperrors.CodeUpstreamFailure, "summarizer request failed", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

func containsAny(signatures ...string) func(error) bool {
	return func(err error) bool {
		text := strings.ToLower(err.Error())
		for _, sig := range signatures {
			if strings.Contains(text, sig) {
				return true
			}
		}
		return false
	}
}

var _ relay.UpstreamClient = (*Client)(nil)
