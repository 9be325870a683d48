// Package schema validates request bodies against the static JSON schema
// definitions shipped with the service.
package schema

import (
	"embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Validator holds the compiled request-body schemas.
type Validator struct {
	newFile   *openapi3.Schema
	shareFile *openapi3.Schema
}

// Load reads and compiles the embedded schema definitions.
func Load() (*Validator, error) {
	newFile, err := loadSchema("new_file.json")
	if err != nil {
		return nil, err
	}
	shareFile, err := loadSchema("share_file.json")
	if err != nil {
		return nil, err
	}
	return &Validator{newFile: newFile, shareFile: shareFile}, nil
}

// ValidateNewFile checks an upload request body. The returned error message
// is safe to surface to the caller.
func (v *Validator) ValidateNewFile(body any) error {
	return v.newFile.VisitJSON(body)
}

// ValidateShareFile checks a share request body.
func (v *Validator) ValidateShareFile(body any) error {
	return v.shareFile.VisitJSON(body)
}

func loadSchema(name string) (*openapi3.Schema, error) {
	data, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}

	s := &openapi3.Schema{}
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}
	return s, nil
}
