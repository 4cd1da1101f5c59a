package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/document.schema.json
var documentSchema []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(documentSchema))
	})
	return schema, schemaErr
}

// ValidatePayload checks a raw {selectedSections, sectionValues} body
// against the document schema. Only JSON shape is checked; selection rules
// live in the domain package.
func ValidatePayload(body []byte) error {
	s, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load document schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("malformed document payload: %w", err)
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// ValidateSection checks a single section value by embedding it in a
// one-kind payload.
func ValidateSection(kind SectionKind, raw json.RawMessage) error {
	body, err := json.Marshal(map[string]any{
		"selectedSections": []SectionKind{kind},
		"sectionValues":    map[SectionKind]json.RawMessage{kind: raw},
	})
	if err != nil {
		return fmt.Errorf("malformed section value: %w", err)
	}
	return ValidatePayload(body)
}
