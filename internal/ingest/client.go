package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var (
	// ErrSourceUnavailable marks a source that could not be reached or
	// read at all (non-200 HTTP status, unreadable file).
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSourceRejected marks a reachable API that answered with a
	// non-success result code.
	ErrSourceRejected = errors.New("source rejected the request")
)

// APIClient fetches festival pages from the open-data API.
type APIClient struct {
	baseURL    string
	serviceID  string
	apiKey     string
	httpClient *http.Client
}

func NewAPIClient(baseURL, serviceID, apiKey string) *APIClient {
	return &APIClient{
		baseURL:   baseURL,
		serviceID: serviceID,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchPage requests one fixed-size page and parses the XML body. A
// non-200 status is ErrSourceUnavailable; result codes are not inspected
// here, the runner decides what to do with them.
func (c *APIClient) FetchPage(ctx context.Context, page, pageSize int) (APIPage, error) {
	params := url.Values{}
	params.Set("svID", c.serviceID)
	params.Set("apiKey", c.apiKey)
	params.Set("resultType", "xml")
	params.Set("pSize", strconv.Itoa(pageSize))
	params.Set("cPage", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return APIPage{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return APIPage{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return APIPage{}, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return APIPage{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	parsed, err := ParseFestivalsXML(body)
	if err != nil {
		return APIPage{}, fmt.Errorf("ParseFestivalsXML -> %w", err)
	}

	return parsed, nil
}
