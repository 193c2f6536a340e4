package http

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// staticSpec adapts a pre-rendered document to the swag registry, which
// expects to read generated docs.
type staticSpec struct {
	doc string
}

func (s *staticSpec) ReadDoc() string {
	return s.doc
}

// RegisterSwaggerUI mounts the interactive API browser at /swagger/. The UI
// is fed the same document the handlers were generated from.
func RegisterSwaggerUI(e *echo.Echo, doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	swag.Register(swag.Name, &staticSpec{doc: string(data)})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
