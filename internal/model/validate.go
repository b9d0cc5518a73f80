package model

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/portfolio.schema.json
var schemaJSON []byte

// ValidateMap validates a generic content payload against the embedded
// portfolio schema. The schema is embedded rather than loaded from disk
// so validation works regardless of working directory.
func ValidateMap(m map[string]interface{}) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}

// Validate round-trips a typed model through JSON and validates the
// resulting document. Catches unknown template and skill-level values
// before they reach a renderer.
func Validate(m ContentModel) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	return ValidateMap(doc)
}
