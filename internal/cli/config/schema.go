package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema constrains the shape of a tool configuration file. Deeper
// rules (mandatory help/version flags, minimum registry size, disjoint
// extension lists) belong to the convargs library and are enforced there.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "program": { "type": "string", "minLength": 1 },
    "version": { "type": "string" },
    "verbose": { "type": "boolean" },
    "strictExtensions": { "type": "boolean" },
    "flags": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "usage": { "type": "string" },
          "default": { "type": "boolean" }
        },
        "required": ["name"],
        "additionalProperties": false
      }
    },
    "extensions": {
      "type": "object",
      "properties": {
        "source": { "type": "array", "items": { "type": "string", "minLength": 1 }, "minItems": 1 },
        "target": { "type": "array", "items": { "type": "string", "minLength": 1 }, "minItems": 1 }
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

var errSchema = errors.New("configuration schema violation")

// validateSchema checks a decoded YAML document against configSchema and
// folds all violations into a single error.
func validateSchema(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", errSchema, strings.Join(details, "; "))
}
