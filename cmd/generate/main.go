package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/codegen"
	queuePkg "github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

func main() {
	kind := flag.String("kind", "quest", "blueprint kind: quest or npc")
	out := flag.String("o", "", "write generated source to file instead of stdout")
	enqueue := flag.String("enqueue", "", "enqueue a generation request for this blueprint ID instead of generating locally")
	redisURL := flag.String("redis", "localhost:6379", "Redis address for -enqueue")
	queueName := flag.String("queue", "generation-requests", "queue name for -enqueue")
	flag.Parse()

	if *enqueue != "" {
		enqueueRequest(*kind, *enqueue, *redisURL, *queueName)
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-kind quest|npc] [-o out.cs] <blueprint.json>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -enqueue <blueprint-id> [-kind quest|npc] [-redis addr]\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal("Failed to read blueprint file:", err)
	}

	source, err := generate(*kind, data)
	if err != nil {
		log.Fatal("Generation failed:", err)
	}

	if *out == "" {
		fmt.Print(source)
		return
	}
	if err := os.WriteFile(*out, []byte(source), 0o644); err != nil {
		log.Fatal("Failed to write output file:", err)
	}
	fmt.Printf("Wrote %d bytes to %s\n", len(source), *out)
}

func generate(kind string, data []byte) (string, error) {
	switch kind {
	case "quest":
		var q blueprint.Quest
		if err := json.Unmarshal(data, &q); err != nil {
			return "", fmt.Errorf("failed to unmarshal quest blueprint: %w", err)
		}
		q.Normalize()
		return codegen.GenerateQuest(&q)

	case "npc":
		var n blueprint.NPC
		if err := json.Unmarshal(data, &n); err != nil {
			return "", fmt.Errorf("failed to unmarshal NPC blueprint: %w", err)
		}
		n.Normalize()
		return codegen.GenerateNPC(&n)

	default:
		return "", fmt.Errorf("unknown blueprint kind %q (expected quest or npc)", kind)
	}
}

func enqueueRequest(kind, blueprintID, redisURL, queueName string) {
	client := redis.NewClient(&redis.Options{Addr: redisURL})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	req := &queuePkg.GenerationRequest{
		RequestID:   uuid.New().String(),
		Kind:        queuePkg.Kind(kind),
		BlueprintID: blueprintID,
		EnqueuedAt:  time.Now(),
	}
	if err := req.Validate(); err != nil {
		log.Fatal("Invalid generation request:", err)
	}

	data, err := req.ToJSON()
	if err != nil {
		log.Fatal("Failed to marshal request:", err)
	}

	if err := client.RPush(ctx, queueName, data).Err(); err != nil {
		log.Fatal("Failed to enqueue request:", err)
	}

	fmt.Printf("Enqueued generation request: %s\n", req.RequestID)

	depth, err := client.LLen(ctx, queueName).Result()
	if err != nil {
		log.Fatal("Failed to get queue depth:", err)
	}
	fmt.Printf("Queue depth: %d requests\n", depth)
}
