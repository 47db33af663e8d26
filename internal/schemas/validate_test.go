package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "score"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "score": {"type": "integer", "minimum": 0, "maximum": 100}
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)

	tests := []struct {
		name      string
		content   string
		wantError bool
	}{
		{name: "valid", content: `{"id": "t-1", "score": 75}`},
		{name: "missing field", content: `{"id": "t-1"}`, wantError: true},
		{name: "wrong type", content: `{"id": "t-1", "score": "high"}`, wantError: true},
		{name: "out of range", content: `{"id": "t-1", "score": 101}`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := writeFile(t, dir, tt.name+".json", tt.content)
			err := ValidateJSON(schemaPath, jsonPath)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "person.json", `{"id": "t-1", "score": 1}`)

	err := ValidateJSON(filepath.Join(dir, "missing.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSON_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "malformed.json", "{ invalid json }")

	assert.Error(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)

	type person struct {
		ID    string `json:"id"`
		Score int    `json:"score"`
	}

	assert.NoError(t, ValidateDocument(schemaPath, person{ID: "t-1", Score: 50}))

	err := ValidateDocument(schemaPath, person{Score: 50})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "id", validationErr.Errors[0].Field)
}

func TestValidateDocument_ErrorList(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "person.schema.json", personSchema)

	err := ValidateDocument(schemaPath, map[string]any{"score": -1})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, err.Error(), "validation failed:")
}

func TestValidateDocument_BadSchema(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "bad.schema.json", `{"type": 12}`)

	err := ValidateDocument(schemaPath, map[string]any{})
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, schemaPath, loadErr.Path)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestValidationError_RootField(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "person.schema.json", personSchema)

	err := ValidateDocument(schemaPath, []string{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestSchemaLoadError_Error(t *testing.T) {
	err := &SchemaLoadError{Path: "x.json", Message: "bad"}
	assert.Equal(t, "failed to load schema x.json: bad", err.Error())

	cause := errors.New("boom")
	err = &SchemaLoadError{Path: "x.json", Message: "bad", Cause: cause}
	assert.Equal(t, "failed to load schema x.json: bad: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(MatchResultSchema)
	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))

	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}
