package servers

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

var (
	loadOnce    sync.Once
	loadedSpec  *openapi3.T
	loadSpecErr error
)

// GetSwagger returns the embedded OpenAPI document, parsed and validated. The result is
// shared; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()
		spec, err := loader.LoadFromData(openapiYAML)
		if err != nil {
			loadSpecErr = fmt.Errorf("error loading OpenAPI document: %w", err)
			return
		}
		if err = spec.Validate(loader.Context); err != nil {
			loadSpecErr = fmt.Errorf("error validating OpenAPI document: %w", err)
			return
		}
		loadedSpec = spec
	})
	return loadedSpec, loadSpecErr
}

// swaggerDoc hands the contract to swag, which is where echo-swagger reads doc.json from.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	spec, err := GetSwagger()
	if err != nil {
		return "{}"
	}
	doc, err := spec.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(doc)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
