package catalogue

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"property-search/models"
)

const schemaURL = "catalogue.schema.json"

var (
	//go:embed schema.json
	schemaJSON []byte

	//go:embed fixtures/properties.json
	defaultFixture []byte

	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("catalogue: add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("catalogue: compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Load validates a JSON array of properties against the catalogue schema and
// builds a Catalogue from it.
func Load(data []byte) (*Catalogue, error) {
	s, err := schema()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalogue: decode: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("catalogue: schema: %v: %w", err, models.ErrInvalidRecord)
	}

	var records []models.Property
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("catalogue: decode records: %w", err)
	}
	return New(records)
}

// LoadFile reads and loads a catalogue fixture from disk.
func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalogue: read %q: %w", path, err)
	}
	return Load(data)
}

// Default returns the embedded sample catalogue.
func Default() *Catalogue {
	c, err := Load(defaultFixture)
	if err != nil {
		panic(fmt.Sprintf("embedded catalogue fixture is invalid: %v", err))
	}
	return c
}
