package auth

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const _casValidateTimeout = 10 * time.Second

// CASClient validates one-time service tickets against the campus CAS server.
//
// CalNet returns the numeric UID as the cas:user value of a successful
// serviceValidate response.
type CASClient struct {
	baseURL string
	client  *http.Client
}

// NewCASClient -.
func NewCASClient(baseURL string) *CASClient {
	return &CASClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: _casValidateTimeout},
	}
}

// LoginURL builds the CAS login URL that redirects back to serviceURL.
func (c *CASClient) LoginURL(serviceURL string) string {
	return c.baseURL + "/login?service=" + url.QueryEscape(serviceURL)
}

type casServiceResponse struct {
	XMLName xml.Name `xml:"serviceResponse"`
	Success *struct {
		User string `xml:"user"`
	} `xml:"authenticationSuccess"`
	Failure *struct {
		Code    string `xml:"code,attr"`
		Message string `xml:",chardata"`
	} `xml:"authenticationFailure"`
}

// ValidateTicket exchanges a one-time ticket for the CalNet UID it proves.
// Returns ErrBadTicket when CAS declines the ticket.
func (c *CASClient) ValidateTicket(ctx context.Context, ticket, serviceURL string) (int, error) {
	validateURL := fmt.Sprintf("%s/serviceValidate?ticket=%s&service=%s",
		c.baseURL, url.QueryEscape(ticket), url.QueryEscape(serviceURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, validateURL, http.NoBody)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("auth - CASClient.ValidateTicket: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("auth - CASClient.ValidateTicket: cas returned %d", resp.StatusCode)
	}

	var parsed casServiceResponse
	if err := xml.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("auth - CASClient.ValidateTicket: %w", err)
	}

	if parsed.Success == nil {
		return 0, ErrBadTicket
	}

	uid, err := strconv.Atoi(parsed.Success.User)
	if err != nil || uid <= 0 {
		return 0, ErrBadTicket
	}

	return uid, nil
}
