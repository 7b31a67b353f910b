package platform_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

func (c *Client) ListSubscriptions(ctx context.Context, page, size int) (domain.Page[domain.Subscription], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "ListSubscriptions",
	})

	url := fmt.Sprintf("%s/api/subscriptions/get?page=%d&size=%d", c.baseURL, page, size)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return domain.Page[domain.Subscription]{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return domain.Page[domain.Subscription]{}, err
	}

	var pageDTO pageResponse[subscriptionResponse]
	if err := json.NewDecoder(resp.Body).Decode(&pageDTO); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return domain.Page[domain.Subscription]{}, err
	}

	result := domain.Page[domain.Subscription]{
		Content:       make([]domain.Subscription, len(pageDTO.Content)),
		TotalPages:    pageDTO.TotalPages,
		TotalElements: pageDTO.TotalElements,
	}
	for i, dto := range pageDTO.Content {
		result.Content[i] = toDomainSubscription(dto)
	}

	return result, nil
}

func (c *Client) AddSubscription(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "AddSubscription",
	})

	body, err := json.Marshal(subscriptionRequest{
		UserID:       sub.UserID,
		PackageID:    sub.PackageID,
		Price:        sub.Price,
		PaymentType:  sub.PaymentType,
		StartDate:    sub.StartDate,
		EndDate:      sub.EndDate,
		Role:         sub.Role,
		PostsUsed:    sub.PostsUsed,
		ContactsUsed: sub.ContactsUsed,
		Status:       string(sub.Status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal subscription: %w", err)
	}

	url := fmt.Sprintf("%s/api/subscriptions/add", c.baseURL)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dto subscriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, err
	}

	clientLogger.Info("Subscription created", port.Fields{"subscription_id": dto.SubscriberID})

	created := toDomainSubscription(dto)
	return &created, nil
}

func (c *Client) CheckAndDeactivateSubscription(ctx context.Context, userID, packageID int64) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "CheckAndDeactivateSubscription",
	})

	url := fmt.Sprintf("%s/api/subscriptions/check-and-deactivate?userId=%d&packageId=%d", c.baseURL, userID, packageID)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodPost, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return "", err
	}

	// Платформа отвечает человекочитаемым текстом, его показываем как есть
	messageBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		clientLogger.Error("Failed to read response from platform api", err, nil)
		return "", err
	}

	message := strings.TrimSpace(string(messageBytes))
	clientLogger.Info("Subscription deactivation processed", port.Fields{
		"user_id":    userID,
		"package_id": packageID,
	})

	return message, nil
}
