package problemgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// problemSchemaDef is the JSON Schema the extracted object must satisfy.
var problemSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"problem_text": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"final_answer": map[string]any{
			"type": "number",
		},
	},
	"required": []any{"problem_text", "final_answer"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateProblem checks the extracted JSON object against the problem
// schema. Extra keys from chatty models are tolerated; missing or
// mistyped required fields are not.
func validateProblem(raw string) error {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledProblemSchema()
	if err != nil {
		return fmt.Errorf("compile problem schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledProblemSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(problemSchemaDef)
		if err != nil {
			compileErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://math-problem.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
