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

func (c *Client) ListRequirements(ctx context.Context, page, size int) (domain.Page[domain.Requirement], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "ListRequirements",
	})

	url := fmt.Sprintf("%s/api/requirement/all?page=%d&size=%d", c.baseURL, page, size)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return domain.Page[domain.Requirement]{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return domain.Page[domain.Requirement]{}, err
	}

	var pageDTO pageResponse[requirementResponse]
	if err := json.NewDecoder(resp.Body).Decode(&pageDTO); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return domain.Page[domain.Requirement]{}, err
	}

	result := domain.Page[domain.Requirement]{
		Content:       make([]domain.Requirement, len(pageDTO.Content)),
		TotalPages:    pageDTO.TotalPages,
		TotalElements: pageDTO.TotalElements,
	}
	for i, dto := range pageDTO.Content {
		result.Content[i] = toDomainRequirement(dto)
	}

	return result, nil
}

func (c *Client) GetRequirement(ctx context.Context, id int64) (*domain.Requirement, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "GetRequirement",
	})

	url := fmt.Sprintf("%s/api/requirement/%d", c.baseURL, id)
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

	var dto requirementResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, err
	}

	requirement := toDomainRequirement(dto)
	return &requirement, nil
}

func (c *Client) UpdateRequirementStatus(ctx context.Context, id int64, status domain.EntityStatus) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "UpdateRequirementStatus",
	})

	url := fmt.Sprintf("%s/api/requirement/status/%d?status=%s", c.baseURL, id, status)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodPut, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	clientLogger.Info("Requirement status updated", port.Fields{"requirement_id": id, "status": string(status)})
	return nil
}

func (c *Client) UpdateRequirement(ctx context.Context, id int64, requirement domain.Requirement) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "UpdateRequirement",
	})

	body, err := json.Marshal(requirementUpdateRequest{
		LookingFor:             requirement.LookingFor,
		PropertyType:           requirement.PropertyType,
		BHKConfig:              requirement.BHKConfig,
		MinBudget:              requirement.MinBudget,
		MaxBudget:              requirement.MaxBudget,
		PreferredLocations:     requirement.PreferredLocations,
		AdditionalRequirements: requirement.AdditionalRequirements,
		PhoneNumber:            requirement.PhoneNumber,
		UserName:               requirement.UserName,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal requirement: %w", err)
	}

	url := fmt.Sprintf("%s/api/requirement/update/%d", c.baseURL, id)
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

	clientLogger.Info("Requirement updated", port.Fields{"requirement_id": id})
	return nil
}
