package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"marketplace-browser/internal/listing/repository"
	pkgLog "marketplace-browser/pkg/log"
)

// HeaderRequestID carries a per-request id to the backend.
const HeaderRequestID = "X-Request-ID"

// Client is the HTTP wrapper for the marketplace product API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *sessionTokenSource // nil for anonymous clients
	limiter    *rate.Limiter       // nil when throttling is disabled
}

// NewClient creates a product API client. Authenticated sessions get a
// transport that attaches the bearer token and refreshes it on demand.
func NewClient(opt repository.FetcherOptions) *Client {
	baseURL := strings.TrimRight(opt.BaseURL, "/")
	plain := &http.Client{Timeout: opt.Timeout}

	c := &Client{
		baseURL:    baseURL,
		httpClient: plain,
	}

	if opt.Session.Authorized() {
		c.tokens = newSessionTokenSource(baseURL, opt.Session, plain)
		c.httpClient = &http.Client{
			Timeout: opt.Timeout,
			Transport: &oauth2.Transport{
				Source: c.tokens,
				Base:   http.DefaultTransport,
			},
		}
	}

	if opt.RatePerSec > 0 {
		burst := opt.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opt.RatePerSec), burst)
	}

	return c
}

// ListProducts calls GET /products. A 401 triggers one token refresh and retry.
func (c *Client) ListProducts(ctx context.Context, req ListProductsRequest) (*ListProductsResponse, error) {
	resp, err := c.listProducts(ctx, req)
	if err == nil {
		return resp, nil
	}

	var fe *FetchError
	if c.tokens != nil && errors.As(err, &fe) && fe.StatusCode == http.StatusUnauthorized && !fe.refresh {
		if c.tokens.invalidate() {
			return c.listProducts(ctx, req)
		}
	}
	return nil, err
}

func (c *Client) listProducts(ctx context.Context, req ListProductsRequest) (*ListProductsResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &FetchError{Message: "throttled: " + err.Error(), Err: err}
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.productsURL(req), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list products request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderRequestID, requestID(ctx))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Token refresh failures surface from the transport wrapped in *url.Error.
		var fe *FetchError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &FetchError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body), Err: statusErr(resp.StatusCode)}
	}

	var out ListProductsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Message: "failed to decode list products response", Err: err}
	}
	return &out, nil
}

func (c *Client) productsURL(req ListProductsRequest) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("limit", strconv.Itoa(req.Limit))
	for name, value := range req.Filters {
		params.Set(name, value)
	}
	return fmt.Sprintf("%s/products?%s", c.baseURL, params.Encode())
}

// errorMessage extracts {"message": ...} from an error body, falling back to a generic text.
func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(body)
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Message != "" {
		return eb.Message
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return "Network error"
}

func requestID(ctx context.Context) string {
	if id := pkgLog.RequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
