package contracts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-console-service/internal/contracts"
)

const validPropertyPayload = `{
	"postedByUserId": 1,
	"category": "RESIDENTIAL",
	"propertyFor": "RENT",
	"propertyName": "Sunrise Villa",
	"address": {"area": "Baner", "city": "Pune", "state": "MH", "pinCode": "411045"},
	"userPhoneNumber": "9876543210",
	"ownerName": "John Smith",
	"role": "OWNER",
	"amenityIds": [1, 2]
}`

func TestValidatePayloadAccepted(t *testing.T) {
	err := contracts.ValidatePayload("PropertySubmitPayload", "1.0.0", []byte(validPropertyPayload))
	assert.NoError(t, err)
}

func TestValidatePayloadRejectsMissingRequired(t *testing.T) {
	payload := `{"postedByUserId": 1, "category": "RESIDENTIAL"}`
	err := contracts.ValidatePayload("PropertySubmitPayload", "1.0.0", []byte(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON schema validation failed")
}

func TestValidatePayloadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad role": `{
			"postedByUserId": 1, "category": "RESIDENTIAL", "propertyFor": "RENT",
			"propertyName": "Villa",
			"address": {"area": "a", "city": "Pune", "state": "MH", "pinCode": "411045"},
			"userPhoneNumber": "9876543210", "ownerName": "John", "role": "TENANT",
			"amenityIds": []
		}`,
		"short phone": `{
			"postedByUserId": 1, "category": "RESIDENTIAL", "propertyFor": "RENT",
			"propertyName": "Villa",
			"address": {"area": "a", "city": "Pune", "state": "MH", "pinCode": "411045"},
			"userPhoneNumber": "12345", "ownerName": "John", "role": "OWNER",
			"amenityIds": []
		}`,
		"zero-led pin code": `{
			"postedByUserId": 1, "category": "RESIDENTIAL", "propertyFor": "RENT",
			"propertyName": "Villa",
			"address": {"area": "a", "city": "Pune", "state": "MH", "pinCode": "041104"},
			"userPhoneNumber": "9876543210", "ownerName": "John", "role": "OWNER",
			"amenityIds": []
		}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, contracts.ValidatePayload("PropertySubmitPayload", "1.0.0", []byte(payload)))
		})
	}
}

func TestValidatePayloadUnknownSchema(t *testing.T) {
	err := contracts.ValidatePayload("UnknownPayload", "1.0.0", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidatePayloadMalformedJSON(t *testing.T) {
	err := contracts.ValidatePayload("PropertySubmitPayload", "1.0.0", []byte(`{broken`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid JSON")
}
