package services

import (
	"context"
	"errors"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

// ErrNotFound is returned when a requested blueprint or generated source
// does not exist.
var ErrNotFound = errors.New("not found")

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Storage defines the interface for blueprint and generated-source
// persistence.
type Storage interface {
	HealthChecker
	Closer

	// SaveQuest stores a quest blueprint under its ID.
	SaveQuest(ctx context.Context, q *blueprint.Quest) error

	// LoadQuest retrieves a quest blueprint by ID.
	// Returns ErrNotFound if it doesn't exist.
	LoadQuest(ctx context.Context, id string) (*blueprint.Quest, error)

	// DeleteQuest removes a quest blueprint by ID.
	DeleteQuest(ctx context.Context, id string) error

	// ListQuests returns the IDs of all stored quest blueprints.
	ListQuests(ctx context.Context) ([]string, error)

	// SaveNPC stores an NPC blueprint under its ID.
	SaveNPC(ctx context.Context, n *blueprint.NPC) error

	// LoadNPC retrieves an NPC blueprint by ID.
	// Returns ErrNotFound if it doesn't exist.
	LoadNPC(ctx context.Context, id string) (*blueprint.NPC, error)

	// DeleteNPC removes an NPC blueprint by ID.
	DeleteNPC(ctx context.Context, id string) error

	// ListNPCs returns the IDs of all stored NPC blueprints.
	ListNPCs(ctx context.Context) ([]string, error)

	// SaveGeneratedSource stores the rendered C# source for a blueprint.
	SaveGeneratedSource(ctx context.Context, kind queue.Kind, id string, source string) error

	// LoadGeneratedSource retrieves the rendered C# source for a blueprint.
	// Returns ErrNotFound if nothing has been generated yet.
	LoadGeneratedSource(ctx context.Context, kind queue.Kind, id string) (string, error)
}
