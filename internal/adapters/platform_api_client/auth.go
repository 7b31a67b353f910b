package platform_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

func (c *Client) AdminLogin(ctx context.Context, email, password string) (*domain.AdminUser, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "AdminLogin",
	})

	body, err := json.Marshal(adminLoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal credentials: %w", err)
	}

	url := fmt.Sprintf("%s/api/auth/admin-login", c.baseURL)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return nil, "", err
	}
	defer resp.Body.Close()

	// Неверные учетные данные не считаем сбоем транспорта,
	// это штатный ответ платформы.
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		clientLogger.Info("Admin login rejected by platform", port.Fields{"status_code": resp.StatusCode})
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return nil, "", err
	}

	var dto adminLoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, "", err
	}

	clientLogger.Info("Admin login succeeded", port.Fields{"admin_id": dto.User.ID})

	return &domain.AdminUser{
		ID:    dto.User.ID,
		Name:  dto.User.Name,
		Email: dto.User.Email,
		Role:  dto.User.Role,
	}, dto.Token, nil
}

func (c *Client) ListUsers(ctx context.Context, page, size int) (domain.Page[domain.User], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "ListUsers",
	})

	url := fmt.Sprintf("%s/api/auth/users?page=%d&size=%d", c.baseURL, page, size)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return domain.Page[domain.User]{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return domain.Page[domain.User]{}, err
	}

	var pageDTO pageResponse[userResponse]
	if err := json.NewDecoder(resp.Body).Decode(&pageDTO); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return domain.Page[domain.User]{}, err
	}

	result := domain.Page[domain.User]{
		Content:       make([]domain.User, len(pageDTO.Content)),
		TotalPages:    pageDTO.TotalPages,
		TotalElements: pageDTO.TotalElements,
	}
	for i, dto := range pageDTO.Content {
		result.Content[i] = toDomainUser(dto)
	}

	return result, nil
}
