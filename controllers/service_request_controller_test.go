package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/servisku/servisku-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceRequest(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/api/service-requests", CreateServiceRequest)
	router.GET("/api/service-requests/:requestId", GetServiceRequest)

	body := `{"deviceType":"AC"}`
	req := httptest.NewRequest(http.MethodPost, "/api/service-requests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	requestID, ok := response["requestId"].(string)
	require.True(t, ok)
	require.NotEmpty(t, requestID)

	// Fetching by the returned id yields the stored record verbatim,
	// with no response envelope
	req = httptest.NewRequest(http.MethodGet, "/api/service-requests/"+requestID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, body, w.Body.String())
}

func TestCreateServiceRequest_OpaquePayload(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/api/service-requests", CreateServiceRequest)
	router.GET("/api/service-requests/:requestId", GetServiceRequest)

	// The payload shape is caller-supplied and unvalidated; nested
	// structures survive the round trip untouched
	body := `{"deviceType":"kulkas","details":{"brand":"LG","purchased":2021},"urgent":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/service-requests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	requestID := response["requestId"].(string)

	req = httptest.NewRequest(http.MethodGet, "/api/service-requests/"+requestID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, body, w.Body.String())
}

func TestGetServiceRequest_NotFound(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.GET("/api/service-requests/:requestId", GetServiceRequest)

	req := httptest.NewRequest(http.MethodGet, "/api/service-requests/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Service request not found", response["message"])
}

func TestCreateServiceRequest_GeneratesDistinctIDs(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/api/service-requests", CreateServiceRequest)

	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/service-requests", bytes.NewBufferString(`{"n":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		ids[response["requestId"].(string)] = true
	}

	assert.Len(t, ids, 3)
}
