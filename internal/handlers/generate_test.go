package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services/events"
	queueSvc "github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services/queue"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
	queuePkg "github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

func newGenerateHandler(t *testing.T) (*GenerateHandler, *services.MockStorage, *queueSvc.GenerationQueue) {
	t.Helper()
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	client, err := queueSvc.NewClient(mr.Addr(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	storage := services.NewMockStorage()
	generationQueue := queueSvc.NewGenerationQueue(client, "")
	broadcaster := events.NewBroadcaster(rdb, logger)
	return NewGenerateHandler(logger, storage, generationQueue, broadcaster), storage, generationQueue
}

func TestGenerateHandler_Inline(t *testing.T) {
	handler, storage, _ := newGenerateHandler(t)
	require.NoError(t, storage.SaveQuest(context.Background(), blueprint.NewQuest("first_delivery", "First Delivery")))

	body := []byte(`{"kind":"quest","blueprint_id":"first_delivery"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Source, "public class FirstDelivery : Quest")

	// Inline generation also persists the output.
	stored, err := storage.LoadGeneratedSource(context.Background(), queuePkg.KindQuest, "first_delivery")
	require.NoError(t, err)
	assert.Equal(t, resp.Source, stored)
}

func TestGenerateHandler_InlineNPC(t *testing.T) {
	handler, storage, _ := newGenerateHandler(t)
	require.NoError(t, storage.SaveNPC(context.Background(), blueprint.NewNPC("benji", "Benji Coleman")))

	body := []byte(`{"kind":"npc","blueprint_id":"benji"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Source, "public class BenjiColeman : NPC")
}

func TestGenerateHandler_NotFound(t *testing.T) {
	handler, _, _ := newGenerateHandler(t)

	body := []byte(`{"kind":"quest","blueprint_id":"missing"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateHandler_BadKind(t *testing.T) {
	handler, _, _ := newGenerateHandler(t)

	body := []byte(`{"kind":"story","blueprint_id":"x"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateHandler_Async(t *testing.T) {
	handler, storage, generationQueue := newGenerateHandler(t)
	require.NoError(t, storage.SaveQuest(context.Background(), blueprint.NewQuest("queued_quest", "Queued Quest")))

	body := []byte(`{"kind":"quest","blueprint_id":"queued_quest","async":true}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Queued)
	assert.NotEmpty(t, resp.RequestID)

	queued, err := generationQueue.Dequeue(context.Background())
	require.NoError(t, err)
	require.NotNil(t, queued)
	assert.Equal(t, "queued_quest", queued.BlueprintID)
	assert.Equal(t, resp.RequestID, queued.RequestID)
}

func TestGenerateHandler_Fetch(t *testing.T) {
	handler, storage, _ := newGenerateHandler(t)
	require.NoError(t, storage.SaveGeneratedSource(context.Background(), queuePkg.KindNPC, "benji", "// source"))

	req := httptest.NewRequest(http.MethodGet, "/v1/generate/npc/benji", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "// source", resp.Source)

	req = httptest.NewRequest(http.MethodGet, "/v1/generate/npc/unknown", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
