package custodial

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"usdc-credits.backend/internal/config"
	"usdc-credits.backend/internal/domain/entities"
)

// APIError is a non-2xx response from the provider API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider api error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
}

// ProviderWallet is a provider-held wallet as reported by the wallets
// listing endpoint.
type ProviderWallet struct {
	ID         string `json:"id"`
	Address    string `json:"address"`
	Blockchain string `json:"blockchain"`
	State      string `json:"state"`
	RefID      string `json:"refId,omitempty"`
}

// TransferRequest asks the provider to move tokens out of a custodial
// wallet. Amount is an integer string in the token's smallest units.
type TransferRequest struct {
	WalletID           string
	TokenID            string
	DestinationAddress string
	Amount             string
}

// TransferResponse is the provider's acknowledgement of a transfer. The
// transfer is asynchronous: State starts as INITIATED and the on-chain hash
// arrives later via webhook.
type TransferResponse struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

// Client talks to the custodial wallet provider's REST API.
type Client struct {
	baseURL      string
	apiKey       string
	entitySecret string
	httpClient   *http.Client
}

// NewClient creates a provider API client from config
func NewClient(cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		entitySecret: cfg.EntitySecret,
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// ListWallets lists custodial wallets, optionally filtered by the reference
// id the wallet was created with.
func (c *Client) ListWallets(ctx context.Context, refID string) ([]ProviderWallet, error) {
	path := "/wallets"
	if refID != "" {
		path += "?refId=" + url.QueryEscape(refID)
	}

	var out struct {
		Wallets []ProviderWallet `json:"wallets"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Wallets, nil
}

// GetWalletBalances lists token balances of a custodial wallet. Amounts are
// decimal strings in whole-token units.
func (c *Client) GetWalletBalances(ctx context.Context, walletID string) ([]entities.ProviderBalance, error) {
	path := "/wallets/" + url.PathEscape(walletID) + "/balances"

	var out struct {
		TokenBalances []struct {
			Token struct {
				ID       string `json:"id"`
				Symbol   string `json:"symbol"`
				Decimals int    `json:"decimals"`
			} `json:"token"`
			Amount string `json:"amount"`
		} `json:"tokenBalances"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	balances := make([]entities.ProviderBalance, 0, len(out.TokenBalances))
	for _, tb := range out.TokenBalances {
		balances = append(balances, entities.ProviderBalance{
			TokenID:  tb.Token.ID,
			Symbol:   tb.Token.Symbol,
			Amount:   tb.Amount,
			Decimals: tb.Token.Decimals,
		})
	}
	return balances, nil
}

// CreateTransfer submits an outbound transfer from a custodial wallet.
func (c *Client) CreateTransfer(ctx context.Context, req TransferRequest) (*TransferResponse, error) {
	body := map[string]interface{}{
		"idempotencyKey":         uuid.NewString(),
		"walletId":               req.WalletID,
		"tokenId":                req.TokenID,
		"destinationAddress":     req.DestinationAddress,
		"amounts":                []string{req.Amount},
		"entitySecretCiphertext": c.entitySecret,
		"feeLevel":               "MEDIUM",
	}

	var out TransferResponse
	if err := c.do(ctx, http.MethodPost, "/developer/transactions/transfer", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Code    interface{} `json:"code"`
			Message string      `json:"message"`
		}
		if json.Unmarshal(raw, &errBody) == nil {
			apiErr.Code = fmt.Sprintf("%v", errBody.Code)
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	// Responses arrive wrapped in a data envelope.
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		raw = envelope.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}
