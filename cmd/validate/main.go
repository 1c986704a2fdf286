package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

func main() {
	kind := flag.String("kind", "", "blueprint kind: quest or npc (default: detect from contents)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-kind quest|npc] <blueprint.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := flag.Arg(0)
	validator := &BlueprintValidator{}

	result, err := validator.validateFile(filename, *kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	if !result.IsValid {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "  error: %s\n", e)
		}
		fmt.Fprintln(os.Stderr, "Blueprint file is invalid.")
		os.Exit(1)
	}

	fmt.Println("Blueprint file is valid!")
}

type BlueprintValidator struct{}

func (v *BlueprintValidator) validateFile(filename, kind string) (*blueprint.ValidationResult, error) {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return nil, fmt.Errorf("blueprint file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidBlueprintFilename(nameWithoutExt) {
		return nil, fmt.Errorf("blueprint filename '%s' must be lowercase snake_case (e.g., first_delivery.json, not FirstDelivery.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("file %s contains invalid JSON", filename)
	}

	if kind == "" {
		kind = detectKind(data)
	}

	switch kind {
	case "quest":
		var q blueprint.Quest
		if err := strictDecode(data, &q); err != nil {
			return nil, fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
		}
		q.Normalize()
		result := q.Validate()
		return &result, nil

	case "npc":
		var n blueprint.NPC
		if err := strictDecode(data, &n); err != nil {
			return nil, fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
		}
		n.Normalize()
		result := n.Validate()
		return &result, nil

	default:
		return nil, fmt.Errorf("unknown blueprint kind %q (expected quest or npc)", kind)
	}
}

func strictDecode(data []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

// detectKind guesses the blueprint kind from top-level fields when the
// -kind flag is omitted. Quests carry objectives, NPCs carry a schedule
// or a first_name.
func detectKind(data []byte) string {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return ""
	}
	if _, ok := probe["objectives"]; ok {
		return "quest"
	}
	if _, ok := probe["schedule"]; ok {
		return "npc"
	}
	if _, ok := probe["first_name"]; ok {
		return "npc"
	}
	return ""
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidBlueprintFilename(name string) bool {
	// Allow 'x.' prefix for experimental blueprints
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
