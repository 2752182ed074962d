package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildResultSchema returns the JSON-Schema for the extraction response.
// In strict mode the handler validates every outgoing payload against it so
// a contract drift fails loudly instead of reaching clients.
func buildResultSchema() map[string]any {
	strArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"email_id":         map[string]any{"type": "string", "minLength": 1},
			"phone_number":     map[string]any{"type": "string", "minLength": 1},
			"name":             map[string]any{"type": "string", "minLength": 1},
			"skills":           strArray,
			"internship_dates": strArray,
			"experience_dates": strArray,
			"fellowship_dates": strArray,
		},
		"required": []string{
			"email_id", "phone_number", "name", "skills",
			"internship_dates", "experience_dates", "fellowship_dates",
		},
	}
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
