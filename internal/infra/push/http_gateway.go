// internal/infra/push/http_gateway.go
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	domainPush "card_notification_service/internal/domain/push"
)

// HTTPGateway implements the push.Gateway interface against the multicast
// delivery service's HTTP API.
type HTTPGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPGateway(baseURL, apiKey string) *HTTPGateway {
	return &HTTPGateway{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type multicastRequest struct {
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data"`
	Tokens      []string          `json:"tokens"`
	CollapseKey string            `json:"collapse_key"`
}

type multicastResponse struct {
	Results []struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code,omitempty"`
	} `json:"results"`
}

// SendMulticast posts one batched message covering all tokens and maps the
// gateway's per-token results back in input order.
func (g *HTTPGateway) SendMulticast(ctx context.Context, msg domainPush.Message) ([]domainPush.SendResult, error) {
	if g.baseURL == "" {
		return nil, fmt.Errorf("push gateway base URL is not configured")
	}

	payload := multicastRequest{
		Title:       msg.Title,
		Body:        msg.Body,
		Data:        map[string]string{"route": msg.Route},
		Tokens:      msg.Tokens,
		CollapseKey: msg.CollapseKey,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal multicast payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/messages/multicast", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create multicast request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute multicast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("push gateway returned error status %d", resp.StatusCode)
	}

	var decoded multicastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode multicast response: %w", err)
	}
	if len(decoded.Results) != len(msg.Tokens) {
		return nil, fmt.Errorf("push gateway returned %d results for %d tokens", len(decoded.Results), len(msg.Tokens))
	}

	results := make([]domainPush.SendResult, len(decoded.Results))
	for i, r := range decoded.Results {
		results[i] = domainPush.SendResult{Success: r.Success, ErrorCode: r.ErrorCode}
	}
	return results, nil
}
