// Package testutil provides test fixtures and helpers for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"go.yaml.in/yaml/v4"
)

// NewServiceDocument creates a small service configuration document with
// the shapes most tests need: nested mappings, a sequence, and scalar
// leaves.
func NewServiceDocument() map[string]any {
	return map[string]any{
		"service": map[string]any{
			"name": "orders",
			"port": 8080,
		},
		"features": []any{"retries", "tracing"},
		"limits": map[string]any{
			"rps":   100,
			"burst": 250,
		},
	}
}

// NewAPIDocument creates an OpenAPI-shaped document as decoded maps.
// Includes paths, operations, and component schemas, with a path template
// member that needs pointer escaping.
func NewAPIDocument() map[string]any {
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Test API",
			"version": "1.0.0",
		},
		"servers": []any{
			map[string]any{
				"url":         "https://api.example.com/v1",
				"description": "Production server",
			},
		},
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{
					"summary":     "List pets",
					"operationId": "listPets",
				},
			},
			"/pets/{id}": map[string]any{
				"get": map[string]any{
					"summary":     "Get a pet",
					"operationId": "getPet",
				},
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"Pet": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "integer"},
						"name": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

// MustUnmarshalJSON decodes src into a map, failing the test on error.
func MustUnmarshalJSON(t *testing.T, src string) map[string]any {
	t.Helper()

	var doc map[string]any
	if err := jsoniter.UnmarshalFromString(src, &doc); err != nil {
		t.Fatalf("Failed to unmarshal JSON fixture: %v", err)
	}
	return doc
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := jsoniter.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
