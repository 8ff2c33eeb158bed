package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserTableName(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
}

func TestTechnicianTableName(t *testing.T) {
	assert.Equal(t, "technicians", Technician{}.TableName())
}

func TestUserJSONKeys(t *testing.T) {
	user := User{
		ID:     "auth0|abc123",
		Email:  "budi@example.com",
		Nama:   "Budi Santoso",
		Alamat: "Jl. Merdeka No. 1",
		Role:   "user",
	}

	data, err := json.Marshal(user)
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &fields))

	// Wire names are the original field names, not Go-style snake case
	assert.Equal(t, "auth0|abc123", fields["id"])
	assert.Equal(t, "budi@example.com", fields["email"])
	assert.Equal(t, "Budi Santoso", fields["nama"])
	assert.Equal(t, "Jl. Merdeka No. 1", fields["alamat"])
	assert.Equal(t, "user", fields["role"])
	assert.Len(t, fields, 5)
}

func TestTechnicianJSONKeys(t *testing.T) {
	technician := Technician{
		ID:              "auth0|tech456",
		Nama:            "Agus",
		Email:           "agus@example.com",
		NoHandphone:     "081234567890",
		Keahlian:        "Perbaikan AC dan kulkas",
		LinkSertifikasi: "https://example.com/sertifikat",
		LinkPortofolio:  "https://example.com/portofolio",
		JenisKeahlian:   "plumbing",
		Role:            "technician",
	}

	data, err := json.Marshal(technician)
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, "auth0|tech456", fields["id"])
	assert.Equal(t, "081234567890", fields["noHandphone"])
	assert.Equal(t, "https://example.com/sertifikat", fields["linkSertifikasi"])
	assert.Equal(t, "https://example.com/portofolio", fields["linkPortofolio"])
	assert.Equal(t, "plumbing", fields["jenisKeahlian"])
	assert.Equal(t, "technician", fields["role"])
	assert.Len(t, fields, 9)
}

func TestFeedbackJSONKeys(t *testing.T) {
	feedback := Feedback{
		ID:      "f1",
		Image:   "",
		Message: "leaking pipe",
	}

	data, err := json.Marshal(feedback)
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, "f1", fields["id"])
	assert.Equal(t, "", fields["image"])
	assert.Equal(t, "leaking pipe", fields["message"])
	assert.Len(t, fields, 3)
}

func TestServiceRequestPayloadNotSerialized(t *testing.T) {
	serviceRequest := ServiceRequest{
		ID:      "r1",
		Payload: `{"deviceType":"AC"}`,
	}

	data, err := json.Marshal(serviceRequest)
	assert.NoError(t, err)

	// The raw payload is served back verbatim by the handler; the struct's
	// own JSON form must not leak it a second time
	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &fields))
	assert.Len(t, fields, 1)
	assert.Equal(t, "r1", fields["id"])
}
