package platform_api_client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/port"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    port.SessionStorePort
}

func NewClient(baseURL string, session port.SessionStorePort) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		session:    session,
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	// 1. Извлекаем trace_id из контекста
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// 2. Устанавливаем заголовок для трассировки
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	// 3. Подписываем запрос токеном текущей сессии, если она есть
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// checkStatus читает тело ошибочного ответа, чтобы включить его в ошибку
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	bodyBytes, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("platform api returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
}
