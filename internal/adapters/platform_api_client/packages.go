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

func (c *Client) ListPackages(ctx context.Context) ([]domain.Package, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "ListPackages",
	})

	// Эндпоинт пакетов отдает весь список без конверта пагинации
	url := fmt.Sprintf("%s/api/packages/get", c.baseURL)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dtos []packageResponse
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, err
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"packages_count": len(dtos)})

	result := make([]domain.Package, len(dtos))
	for i, dto := range dtos {
		result[i] = toDomainPackage(dto)
	}

	return result, nil
}

func (c *Client) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "GetPackage",
	})

	url := fmt.Sprintf("%s/api/packages/get/%d", c.baseURL, id)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dto packageResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, err
	}

	pkg := toDomainPackage(dto)
	return &pkg, nil
}

func (c *Client) AddPackage(ctx context.Context, pkg domain.Package) (*domain.Package, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "AddPackage",
	})

	body, err := json.Marshal(toPackageRequest(pkg))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal package: %w", err)
	}

	url := fmt.Sprintf("%s/api/packages/add", c.baseURL)
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

	var dto packageResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, err
	}

	clientLogger.Info("Package created", port.Fields{"package_id": dto.PackageID})

	created := toDomainPackage(dto)
	return &created, nil
}

func (c *Client) UpdatePackage(ctx context.Context, id int64, pkg domain.Package) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "UpdatePackage",
	})

	body, err := json.Marshal(toPackageRequest(pkg))
	if err != nil {
		return fmt.Errorf("failed to marshal package: %w", err)
	}

	url := fmt.Sprintf("%s/api/packages/update/%d", c.baseURL, id)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	clientLogger.Info("Package updated", port.Fields{"package_id": id})
	return nil
}

func toPackageRequest(pkg domain.Package) packageRequest {
	return packageRequest{
		PackageName:  pkg.PackageName,
		Description:  pkg.Description,
		Price:        pkg.Price,
		DurationDays: pkg.DurationDays,
		PostLimit:    pkg.PostLimit,
		ContactLimit: pkg.ContactLimit,
		Features:     pkg.Features,
		UserRole:     pkg.UserRole,
	}
}
