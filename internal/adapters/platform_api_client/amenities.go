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

func (c *Client) ListAmenities(ctx context.Context, page, size int) (domain.Page[domain.Amenity], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "ListAmenities",
	})

	url := fmt.Sprintf("%s/api/amenities/get?page=%d&size=%d", c.baseURL, page, size)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return domain.Page[domain.Amenity]{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return domain.Page[domain.Amenity]{}, err
	}

	var pageDTO pageResponse[amenityResponse]
	if err := json.NewDecoder(resp.Body).Decode(&pageDTO); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return domain.Page[domain.Amenity]{}, err
	}

	result := domain.Page[domain.Amenity]{
		Content:       make([]domain.Amenity, len(pageDTO.Content)),
		TotalPages:    pageDTO.TotalPages,
		TotalElements: pageDTO.TotalElements,
	}
	for i, dto := range pageDTO.Content {
		result.Content[i] = domain.Amenity{ID: dto.AmenityID, Name: dto.Name}
	}

	return result, nil
}

func (c *Client) AddAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "AddAmenity",
	})

	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amenity: %w", err)
	}

	url := fmt.Sprintf("%s/api/amenities/add", c.baseURL)
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

	var dto amenityResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, err
	}

	clientLogger.Info("Amenity created", port.Fields{"amenity_id": dto.AmenityID})
	return &domain.Amenity{ID: dto.AmenityID, Name: dto.Name}, nil
}
