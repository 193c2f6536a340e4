package http

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openAPIDocument []byte

// LoadOpenAPISpec parses and validates the embedded API document. The
// document is the contract the generated handlers were produced from, so a
// load failure at startup means the build is broken.
func LoadOpenAPISpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	return doc, nil
}

// RegisterOpenAPIRoute serves the API document as JSON for client tooling.
func RegisterOpenAPIRoute(e *echo.Echo, doc *openapi3.T) {
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	})
}
