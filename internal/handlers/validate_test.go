package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

func postValidate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewValidateHandler(testLogger())
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestValidateHandler_ValidQuest(t *testing.T) {
	rec := postValidate(t, `{"kind":"quest","blueprint":{"id":"q","name":"Quest","title":"Quest","objectives":[{"name":"go_home","title":"Go Home"}]}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result blueprint.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateHandler_QuestWarnings(t *testing.T) {
	rec := postValidate(t, `{"kind":"quest","blueprint":{"objectives":[]}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result blueprint.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsValid, "warnings never block")
	assert.NotEmpty(t, result.Warnings)
}

func TestValidateHandler_NPCError(t *testing.T) {
	rec := postValidate(t, `{"kind":"npc","blueprint":{"id":"x","name":"Someone","first_name":"Someone","schedule":[{"kind":"teleport"}]}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result blueprint.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidateHandler_NormalizesBeforeValidating(t *testing.T) {
	// Legacy label prefix on the action kind must not read as unknown.
	rec := postValidate(t, `{"kind":"npc","blueprint":{"id":"x","name":"Someone","first_name":"Someone","schedule":[{"kind":"Action: Use_ATM","start_time":900}]}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result blueprint.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateHandler_BadRequests(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, postValidate(t, `{"kind":"story","blueprint":{}}`).Code)
	assert.Equal(t, http.StatusBadRequest, postValidate(t, `{"kind":"quest"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postValidate(t, `not json`).Code)
}
