package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services/events"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/codegen"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

// Processor runs one generation request end to end: load the blueprint,
// render it, store the output, publish the preview events.
type Processor struct {
	storage     services.Storage
	broadcaster *events.Broadcaster
	log         *slog.Logger
}

func NewProcessor(storage services.Storage, broadcaster *events.Broadcaster, log *slog.Logger) *Processor {
	return &Processor{
		storage:     storage,
		broadcaster: broadcaster,
		log:         log,
	}
}

// Process generates and stores the source for one request. The returned
// error is the request's failure reason; transport errors publishing events
// are logged but never fail the request.
func (p *Processor) Process(ctx context.Context, req *queue.GenerationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	switch req.Kind {
	case queue.KindQuest:
		return p.processQuest(ctx, req)
	case queue.KindNPC:
		return p.processNPC(ctx, req)
	default:
		return fmt.Errorf("unknown generation kind: %q", req.Kind)
	}
}

func (p *Processor) processQuest(ctx context.Context, req *queue.GenerationRequest) error {
	q, err := p.storage.LoadQuest(ctx, req.BlueprintID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fmt.Errorf("quest %q not found", req.BlueprintID)
		}
		return fmt.Errorf("failed to load quest %q: %w", req.BlueprintID, err)
	}

	source, err := codegen.GenerateQuest(q)
	if err != nil {
		return fmt.Errorf("failed to generate quest %q: %w", req.BlueprintID, err)
	}

	if err := p.storage.SaveGeneratedSource(ctx, queue.KindQuest, req.BlueprintID, source); err != nil {
		return fmt.Errorf("failed to store generated source for quest %q: %w", req.BlueprintID, err)
	}

	p.log.Info("Quest source generated",
		"blueprint_id", req.BlueprintID,
		"request_id", req.RequestID,
		"source_bytes", len(source),
	)
	return nil
}

func (p *Processor) processNPC(ctx context.Context, req *queue.GenerationRequest) error {
	n, err := p.storage.LoadNPC(ctx, req.BlueprintID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fmt.Errorf("NPC %q not found", req.BlueprintID)
		}
		return fmt.Errorf("failed to load NPC %q: %w", req.BlueprintID, err)
	}

	source, err := codegen.GenerateNPC(n)
	if err != nil {
		return fmt.Errorf("failed to generate NPC %q: %w", req.BlueprintID, err)
	}

	if err := p.storage.SaveGeneratedSource(ctx, queue.KindNPC, req.BlueprintID, source); err != nil {
		return fmt.Errorf("failed to store generated source for NPC %q: %w", req.BlueprintID, err)
	}

	// Refresh the editor's avatar preview alongside the generated source.
	if n.Appearance.HasAny() {
		if err := p.broadcaster.PublishAppearancePreview(ctx, req.BlueprintID, n.Appearance); err != nil {
			p.log.Error("Failed to publish appearance preview", "error", err, "blueprint_id", req.BlueprintID)
		}
	}

	p.log.Info("NPC source generated",
		"blueprint_id", req.BlueprintID,
		"request_id", req.RequestID,
		"source_bytes", len(source),
	)
	return nil
}

// SourceSize reports the stored source length for completion events.
func (p *Processor) SourceSize(ctx context.Context, req *queue.GenerationRequest) int {
	source, err := p.storage.LoadGeneratedSource(ctx, req.Kind, req.BlueprintID)
	if err != nil {
		return 0
	}
	return len(source)
}
