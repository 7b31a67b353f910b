package platform_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"admin-console-service/internal/constants"
	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/contracts"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port"
)

func (c *Client) ListProperties(ctx context.Context, page, size int) (domain.Page[domain.Property], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "ListProperties",
	})

	// Порядок сортировки фиксированный: новые объекты сверху
	url := fmt.Sprintf("%s/api/properties/get?page=%d&size=%d&sort=%s&direction=%s",
		c.baseURL, page, size, constants.PropertySortKey, constants.PropertySortDirection)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return domain.Page[domain.Property]{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return domain.Page[domain.Property]{}, err
	}

	var pageDTO pageResponse[propertyResponse]
	if err := json.NewDecoder(resp.Body).Decode(&pageDTO); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return domain.Page[domain.Property]{}, err
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"properties_count": len(pageDTO.Content)})

	// Маппим DTO ответа в нашу доменную модель
	result := domain.Page[domain.Property]{
		Content:       make([]domain.Property, len(pageDTO.Content)),
		TotalPages:    pageDTO.TotalPages,
		TotalElements: pageDTO.TotalElements,
	}
	for i, dto := range pageDTO.Content {
		result.Content[i] = toDomainProperty(dto)
	}

	return result, nil
}

func (c *Client) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "GetProperty",
	})

	url := fmt.Sprintf("%s/api/properties/get/%d", c.baseURL, id)
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

	var dto propertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, err
	}

	property := toDomainProperty(dto)
	return &property, nil
}

func (c *Client) UpdatePropertyStatus(ctx context.Context, id int64, status domain.EntityStatus) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "UpdatePropertyStatus",
	})

	// Статус уходит query-параметром, тело запроса пустое
	url := fmt.Sprintf("%s/api/properties/update-status/%d?status=%s", c.baseURL, id, status)
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

	clientLogger.Info("Property status updated", port.Fields{"property_id": id, "status": string(status)})
	return nil
}

func (c *Client) GetPropertyEnums(ctx context.Context) (*domain.PropertyEnums, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "GetPropertyEnums",
	})

	url := fmt.Sprintf("%s/api/properties/all_enum", c.baseURL)
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

	var dto propertyEnumsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, err
	}

	return &domain.PropertyEnums{
		PropertyCategory: dto.PropertyCategory,
		FurnishedType:    dto.FurnishedType,
		BHKType:          dto.BHKType,
		PropertyFor:      dto.PropertyFor,
		ApartmentType:    dto.ApartmentType,
	}, nil
}

func (c *Client) AddProperty(ctx context.Context, property domain.Property, images []domain.ImageFile) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PlatformApiClient",
		"method":    "AddProperty",
	})

	// Собираем multipart: часть "property" с JSON объекта
	// и по части "images" на каждый файл.
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	propertyJSON, err := json.Marshal(toSubmitRequest(property))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal property: %w", err)
	}

	// Проверяем собранное тело по контракту до отправки, чтобы ловить
	// расхождения с платформой на нашей стороне.
	if err := contracts.ValidatePayload("PropertySubmitPayload", "1.0.0", propertyJSON); err != nil {
		clientLogger.Error("Property payload failed contract validation", err, nil)
		return nil, err
	}

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="property"`)
	partHeader.Set("Content-Type", "application/json")
	propertyPart, err := writer.CreatePart(partHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create property part: %w", err)
	}
	if _, err := propertyPart.Write(propertyJSON); err != nil {
		return nil, fmt.Errorf("failed to write property part: %w", err)
	}

	for _, img := range images {
		imgHeader := textproto.MIMEHeader{}
		imgHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, img.Name))
		imgHeader.Set("Content-Type", img.ContentType)
		imgPart, err := writer.CreatePart(imgHeader)
		if err != nil {
			return nil, fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := imgPart.Write(img.Data); err != nil {
			return nil, fmt.Errorf("failed to write image part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/api/properties/add", c.baseURL)
	clientLogger.Debug("Sending request to platform api", port.Fields{"url": url, "images_count": len(images)})

	// Multipart не проходит через doRequest: у него свой Content-Type
	// с boundary, но трассировку и токен проставляем так же.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform api", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform api", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dto propertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform api", err, nil)
		return nil, err
	}

	clientLogger.Info("Property created", port.Fields{"property_id": dto.PropertyID})

	created := toDomainProperty(dto)
	return &created, nil
}
