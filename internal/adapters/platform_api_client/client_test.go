package platform_api_client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-console-service/internal/adapters/platform_api_client"
	"admin-console-service/internal/contextkeys"
	"admin-console-service/internal/core/domain"
)

type stubSession struct {
	token string
}

func (s *stubSession) SetSession(user *domain.AdminUser, token string) error {
	s.token = token
	return nil
}
func (s *stubSession) ClearSession() error            { s.token = ""; return nil }
func (s *stubSession) IsAuthenticated() bool          { return s.token != "" }
func (s *stubSession) Token() string                  { return s.token }
func (s *stubSession) CurrentUser() *domain.AdminUser { return nil }

func TestListPropertiesParsesEnvelope(t *testing.T) {
	var gotQuery string
	var gotAuth string
	var gotTrace string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/properties/get", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotTrace = r.Header.Get("X-Trace-ID")

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"content": [{
				"propertyId": 17,
				"category": "RESIDENTIAL",
				"propertyFor": "RENT",
				"propertyName": "Sunrise Villa",
				"address": {"area": "Baner", "city": "Pune", "state": "MH", "pinCode": "411045"},
				"availableFrom": "2026-09-01",
				"status": "ACTIVE",
				"propertyGallery": ["a.jpg"]
			}],
			"totalPages": 3,
			"totalElements": 25
		}`)
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{token: "jwt-token"})
	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-123")

	page, err := client.ListProperties(ctx, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, "page=0&size=10&sort=propertyId&direction=desc", gotQuery)
	assert.Equal(t, "Bearer jwt-token", gotAuth)
	assert.Equal(t, "trace-123", gotTrace)

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(25), page.TotalElements)
	require.Len(t, page.Content, 1)

	property := page.Content[0]
	assert.Equal(t, int64(17), property.ID)
	assert.Equal(t, domain.CategoryResidential, property.Category)
	assert.Equal(t, "Baner", property.Address.Area)
	assert.Equal(t, 2026, property.AvailableFrom.Year())
	assert.Equal(t, []string{"a.jpg"}, property.Images)
}

func TestGetPropertyNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such property", http.StatusNotFound)
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{})
	_, err := client.GetProperty(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePropertyStatusSendsQueryParam(t *testing.T) {
	var gotMethod, gotPath, gotStatus string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotStatus = r.URL.Query().Get("status")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{})
	require.NoError(t, client.UpdatePropertyStatus(context.Background(), 17, domain.StatusInactive))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/properties/update-status/17", gotPath)
	assert.Equal(t, "INACTIVE", gotStatus)
}

func TestAddPropertySendsMultipart(t *testing.T) {
	var propertyJSON []byte
	var imageNames []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/properties/add", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))

		propertyValues := r.MultipartForm.Value["property"]
		if len(propertyValues) > 0 {
			propertyJSON = []byte(propertyValues[0])
		} else {
			// Часть с Content-Type application/json приходит файлом
			files := r.MultipartForm.File["property"]
			require.Len(t, files, 1)
			f, err := files[0].Open()
			require.NoError(t, err)
			defer f.Close()
			propertyJSON, err = io.ReadAll(f)
			require.NoError(t, err)
		}

		for _, header := range r.MultipartForm.File["images"] {
			imageNames = append(imageNames, header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"propertyId": 42, "propertyName": "Sunrise Villa"}`)
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{token: "jwt-token"})

	property := domain.Property{
		PostedByUserID:  1,
		Category:        domain.CategoryResidential,
		PropertyFor:     domain.DealRent,
		PropertyName:    "Sunrise Villa",
		Address:         domain.Address{Area: "Baner", City: "Pune", State: "MH", PinCode: "411045"},
		OwnerName:       "John Smith",
		UserPhoneNumber: "9876543210",
		PosterRole:      domain.RoleOwner,
	}
	images := []domain.ImageFile{
		{Name: "front.jpg", ContentType: "image/jpeg", Data: []byte{1, 2}},
		{Name: "back.jpg", ContentType: "image/jpeg", Data: []byte{3}},
	}

	created, err := client.AddProperty(context.Background(), property, images)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)

	assert.Contains(t, string(propertyJSON), `"propertyName":"Sunrise Villa"`)
	assert.Contains(t, string(propertyJSON), `"amenityIds":[]`)
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, imageNames)
}

func TestAddPropertyRejectsContractViolationLocally(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{})

	// Телефон не из десяти цифр нарушает контракт платформы
	property := domain.Property{
		PostedByUserID:  1,
		Category:        domain.CategoryResidential,
		PropertyFor:     domain.DealRent,
		PropertyName:    "Sunrise Villa",
		Address:         domain.Address{Area: "Baner", City: "Pune", State: "MH", PinCode: "411045"},
		OwnerName:       "John Smith",
		UserPhoneNumber: "12345",
		PosterRole:      domain.RoleOwner,
	}

	_, err := client.AddProperty(context.Background(), property, nil)
	assert.Error(t, err)
	assert.Equal(t, 0, requests, "invalid payload must not reach the platform")
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{})
	_, _, err := client.AdminLogin(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/admin-login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"email":"admin@example.com"`)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"token": "jwt-token", "user": {"id": 1, "name": "Admin", "email": "admin@example.com", "role": "ADMIN"}}`)
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{})
	user, token, err := client.AdminLogin(context.Background(), "admin@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ADMIN", user.Role)
}

func TestCheckAndDeactivateReadsPlainText(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/subscriptions/check-and-deactivate", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		gotQuery = r.URL.RawQuery
		io.WriteString(w, "Subscription deactivated successfully\n")
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{})
	message, err := client.CheckAndDeactivateSubscription(context.Background(), 7, 3)
	require.NoError(t, err)

	assert.Equal(t, "userId=7&packageId=3", gotQuery)
	assert.Equal(t, "Subscription deactivated successfully", message)
}

func TestListPackagesParsesBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/packages/get", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"packageId": 1, "packageName": "Gold", "price": 999}, {"packageId": 2, "packageName": "Silver", "price": 499}]`)
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{})
	packages, err := client.ListPackages(context.Background())
	require.NoError(t, err)

	require.Len(t, packages, 2)
	assert.Equal(t, int64(1), packages[0].ID)
	assert.Equal(t, "Gold", packages[0].PackageName)
}

func TestErrorResponseIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{})
	_, err := client.ListAmenities(context.Background(), 0, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal failure")
}

func TestGetRequirementNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/requirement/5", r.URL.Path)
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer server.Close()

	client := platform_api_client.NewClient(server.URL, &stubSession{})
	_, err := client.GetRequirement(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
