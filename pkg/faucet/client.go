package faucet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nursecredx/onboarding-sdk-go/pkg/shared"
)

type Client struct {
	network    string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Client. Mainnet is rejected unless BaseURL points
// somewhere explicit.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		baseURL, err = shared.DefaultFaucetURL(network)
		if err != nil {
			return nil, err
		}
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid faucet URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid faucet URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid faucet URL: host is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	return &Client{
		network:    network,
		baseURL:    strings.TrimRight(parsedBaseURL.String(), "/"),
		httpClient: httpClient,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Network() string {
	return c.network
}

// Fund asks the faucet to credit destination with test XRP. An empty
// destination funds a newly generated account and returns its secret.
func (c *Client) Fund(ctx context.Context, destination string) (FundResult, error) {
	var response fundResponse
	request := fundRequest{Destination: strings.TrimSpace(destination)}
	if err := c.postJSON(ctx, request, &response); err != nil {
		return FundResult{}, err
	}

	result := FundResult{
		Address: firstNonEmpty(response.Account.ClassicAddress, response.Account.Address, request.Destination),
		Secret:  response.Account.Secret,
		Amount:  response.Amount,
	}
	switch {
	case response.Account.Balance != nil:
		result.Balance = *response.Account.Balance
	case response.Balance != nil:
		result.Balance = *response.Balance
	default:
		result.Balance = response.Amount
	}

	if result.Address == "" {
		return FundResult{}, fmt.Errorf("faucet response did not include an account address")
	}
	return result, nil
}

func (c *Client) postJSON(ctx context.Context, payload any, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("faucet request failed: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf(
			"faucet POST %s failed with status %d: %s",
			c.baseURL,
			response.StatusCode,
			strings.TrimSpace(string(responseBody)),
		)
	}

	if err := json.Unmarshal(responseBody, target); err != nil {
		return fmt.Errorf("failed to decode faucet response: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
