// Package api embeds the registry OpenAPI document.
package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed registry.openapi.yaml
var registrySpec []byte

// LoadRegistrySpec parses and validates the embedded OpenAPI document.
func LoadRegistrySpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(registrySpec)
	if err != nil {
		return nil, fmt.Errorf("can't load registry openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("registry openapi document is invalid: %w", err)
	}
	return doc, nil
}
