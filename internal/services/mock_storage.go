package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

// MockStorage is an in-memory implementation of Storage for testing.
type MockStorage struct {
	mu        sync.Mutex
	quests    map[string]*blueprint.Quest
	npcs      map[string]*blueprint.NPC
	generated map[string]string
	pingError error
	saveError error
}

var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		quests:    make(map[string]*blueprint.Quest),
		npcs:      make(map[string]*blueprint.NPC),
		generated: make(map[string]string),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.pingError = err
}

// SetSaveError configures the mock to fail all save operations
func (m *MockStorage) SetSaveError(err error) {
	m.saveError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) SaveQuest(ctx context.Context, q *blueprint.Quest) error {
	if q == nil {
		return errors.New("quest cannot be nil")
	}
	if m.saveError != nil {
		return m.saveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quests[q.ID] = q
	return nil
}

func (m *MockStorage) LoadQuest(ctx context.Context, id string) (*blueprint.Quest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return q, nil
}

func (m *MockStorage) DeleteQuest(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.quests, id)
	return nil
}

func (m *MockStorage) ListQuests(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.quests))
	for id := range m.quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *MockStorage) SaveNPC(ctx context.Context, n *blueprint.NPC) error {
	if n == nil {
		return errors.New("NPC cannot be nil")
	}
	if m.saveError != nil {
		return m.saveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.npcs[n.ID] = n
	return nil
}

func (m *MockStorage) LoadNPC(ctx context.Context, id string) (*blueprint.NPC, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.npcs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return n, nil
}

func (m *MockStorage) DeleteNPC(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.npcs, id)
	return nil
}

func (m *MockStorage) ListNPCs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.npcs))
	for id := range m.npcs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *MockStorage) SaveGeneratedSource(ctx context.Context, kind queue.Kind, id string, source string) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated[string(kind)+":"+id] = source
	return nil
}

func (m *MockStorage) LoadGeneratedSource(ctx context.Context, kind queue.Kind, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	source, ok := m.generated[string(kind)+":"+id]
	if !ok {
		return "", ErrNotFound
	}
	return source, nil
}
