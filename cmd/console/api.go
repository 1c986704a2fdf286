package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
)

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

// listBlueprints fetches blueprint IDs for a kind ("quest" or "npc").
func listBlueprints(client *http.Client, baseURL string, kind string) ([]string, error) {
	resp, err := client.Get(baseURL + "/v1/" + kind + "s")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var listing map[string][]string
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, err
	}

	ids := listing[kind+"s"]
	sort.Strings(ids)
	return ids, nil
}

// GenerateResult is the API response for generation requests.
type GenerateResult struct {
	Kind        string `json:"kind"`
	BlueprintID string `json:"blueprint_id"`
	Source      string `json:"source"`
}

// generateSource runs inline generation for a blueprint and returns the
// C# source.
func generateSource(client *http.Client, baseURL string, kind, blueprintID string) (*GenerateResult, error) {
	reqBody := map[string]any{
		"kind":         kind,
		"blueprint_id": blueprintID,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		baseURL+"/v1/generate",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to generate source: %s", errorResp.Error)
	}

	var result GenerateResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse generation response: %w", err)
	}
	return &result, nil
}

// getBlueprintTitle reads a blueprint and returns its display title.
func getBlueprintTitle(client *http.Client, baseURL string, kind, blueprintID string) (string, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/%ss/%s", baseURL, kind, blueprintID))
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return "", fmt.Errorf("failed to get blueprint: %s", errorResp.Error)
	}

	var bp struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(body, &bp); err != nil {
		return "", fmt.Errorf("failed to parse blueprint response: %w", err)
	}
	if bp.Title != "" {
		return bp.Title, nil
	}
	return bp.Name, nil
}
