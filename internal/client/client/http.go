package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/signin/internal/client/models"
	"github.com/dmitrijs2005/signin/internal/logging"
)

const (
	RequestIDHeader = "X-Request-ID"

	// maxErrorBody bounds how much of a rejection body is read.
	maxErrorBody = 64 << 10
)

// HTTPClient implements Client against a JSON login endpoint.
type HTTPClient struct {
	loginURL   string
	httpClient *http.Client
	validate   *validator.Validate
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client posting to loginURL. A nil httpClient means
// http.DefaultClient, a nil log discards output.
func NewHTTPClient(loginURL string, httpClient *http.Client, log logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &HTTPClient{
		loginURL:   loginURL,
		httpClient: httpClient,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		log:        log.With("component", "http_client"),
	}
}

// Login sends exactly one POST with creds as the JSON body.
func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	c.log.Debug(ctx, "login request", "request_id", requestID, "url", c.loginURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "login response", "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RejectionError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	var lr models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if err := c.validate.Struct(lr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return &lr, nil
}

// errorMessage extracts the "error" field of a rejection body. Empty,
// non-JSON and non-string bodies yield "".
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var er models.ErrorResponse
	if err := json.Unmarshal(data, &er); err != nil {
		return ""
	}
	return er.Error
}
