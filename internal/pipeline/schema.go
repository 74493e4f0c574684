package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jdelacruz-io/campus-records/constants"
)

// payloadSchemas are coarse structural checks applied to the extracted
// payload before a record is stored. They guard field names and shapes,
// not values; extractors own value-level cleaning. List fields admit null
// because a structural miss legitimately produces a nil slice, and a miss
// degrades rather than fails.
var payloadSchemas = map[constants.DocKind]map[string]any{
	constants.KindCurriculum: {
		"type":     "object",
		"required": []any{"program", "department", "all_subjects"},
		"properties": map[string]any{
			"program":      map[string]any{"type": "string"},
			"program_code": map[string]any{"type": "string"},
			"department":   map[string]any{"type": "string"},
			"all_subjects": map[string]any{"type": []any{"array", "null"}},
			"years":        map[string]any{"type": []any{"array", "null"}},
		},
	},
	constants.KindCOR: {
		"type":     "object",
		"required": []any{"classes"},
		"properties": map[string]any{
			"classes": map[string]any{"type": []any{"array", "null"}},
		},
	},
	constants.KindDutySchedule: {
		"type":     "object",
		"required": []any{"entries"},
		"properties": map[string]any{
			"entries": map[string]any{"type": []any{"array", "null"}},
			"days":    map[string]any{"type": []any{"array", "null"}},
		},
	},
	constants.KindStudent: {
		"type":     "object",
		"required": []any{"surname", "first_name"},
	},
	constants.KindFaculty: {
		"type":     "object",
		"required": []any{"surname", "first_name", "department"},
	},
	constants.KindAdmin: {
		"type":     "object",
		"required": []any{"surname", "first_name", "department"},
	},
	constants.KindNonTeaching: {
		"type":     "object",
		"required": []any{"surname", "first_name"},
	},
	constants.KindGeneralInfo: {
		"type":     "object",
		"required": []any{"type"},
	},
	constants.KindResume: {
		"type":     "object",
		"required": []any{"surname", "first_name"},
	},
}

var (
	compiledMu sync.Mutex
	compiled   = map[constants.DocKind]*jsonschema.Schema{}
)

// ValidatePayload checks the marshaled payload of a record against the
// schema registered for its kind. Kinds without a schema pass.
func ValidatePayload(kind constants.DocKind, payload any) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}
	if schema == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match %s schema: %w", kind, err)
	}
	return nil
}

func schemaFor(kind constants.DocKind) (*jsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()
	if s, ok := compiled[kind]; ok {
		return s, nil
	}
	raw, ok := payloadSchemas[kind]
	if !ok {
		compiled[kind] = nil
		return nil, nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	s, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	compiled[kind] = s
	return s, nil
}
