package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string, httpClient *http.Client) *apiClient {
	return &apiClient{baseURL: baseURL, http: httpClient}
}

type transactionPayload struct {
	Email  string `json:"email"`
	Pin    string `json:"pin"`
	Amount int64  `json:"amount"`
	TxType string `json:"tx_type"`
}

// ensureUser creates the account, tolerating an existing one
func (c *apiClient) ensureUser(ctx context.Context, email, pin string) error {
	body, err := json.Marshal(map[string]string{"email": email, "pin": pin})
	if err != nil {
		return err
	}
	status, err := c.do(ctx, http.MethodPost, "/users", body, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusConflict {
		return fmt.Errorf("create user: HTTP status code %d", status)
	}
	return nil
}

// post sends one transaction and returns the HTTP status
func (c *apiClient) post(ctx context.Context, email, pin, txType string, amount int64) (int, error) {
	body, err := json.Marshal(transactionPayload{Email: email, Pin: pin, Amount: amount, TxType: txType})
	if err != nil {
		return 0, err
	}
	status, err := c.do(ctx, http.MethodPost, "/transactions", body, nil)
	if err != nil {
		return status, err
	}
	if status != http.StatusCreated {
		return status, fmt.Errorf("HTTP status code %d", status)
	}
	return status, nil
}

func (c *apiClient) balance(ctx context.Context, email, pin string) (int64, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("pin", pin)

	var out struct {
		Balance int64 `json:"current_balance"`
	}
	status, err := c.do(ctx, http.MethodGet, "/users/current-balance?"+q.Encode(), nil, &out)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("balance: HTTP status code %d", status)
	}
	return out.Balance, nil
}

func (c *apiClient) do(ctx context.Context, method, path string, body []byte, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return resp.StatusCode, nil
}
