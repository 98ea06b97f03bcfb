package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()
	if len(tools) != 6 {
		t.Fatalf("tool count: got %d, want 6", len(tools))
	}

	seen := make(map[string]bool)
	for _, tool := range tools {
		if tool.Name == "" {
			t.Error("tool with empty name")
		}
		if seen[tool.Name] {
			t.Errorf("duplicate tool name %q", tool.Name)
		}
		seen[tool.Name] = true

		if tool.Description == "" {
			t.Errorf("tool %q has no description", tool.Name)
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("tool %q schema type: got %v", tool.Name, tool.InputSchema["type"])
		}
		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok || len(props) == 0 {
			t.Errorf("tool %q has no properties", tool.Name)
			continue
		}
		if _, ok := props["path"]; !ok {
			t.Errorf("tool %q missing path property", tool.Name)
		}
	}
}

func TestGetToolDefinitions_RequiredFieldsExist(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		props := tool.InputSchema["properties"].(map[string]interface{})
		required, ok := tool.InputSchema["required"].([]string)
		if !ok {
			t.Errorf("tool %q has no required list", tool.Name)
			continue
		}
		for _, name := range required {
			if _, exists := props[name]; !exists {
				t.Errorf("tool %q requires unknown property %q", tool.Name, name)
			}
		}
	}
}

func TestGetToolDefinitions_MarshalToJSON(t *testing.T) {
	// The tool catalog crosses the wire verbatim in tools/list responses.
	data, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	for _, tool := range decoded {
		if _, ok := tool["inputSchema"]; !ok {
			t.Errorf("tool %v missing inputSchema key", tool["name"])
		}
	}
}
