package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDoc sync.Once

// RegisterSwagger publishes the API document under /swagger/doc.json and the
// Swagger UI under /swagger/index.html.
func RegisterSwagger(e *echo.Echo, swagger *openapi3.T) error {
	doc, err := json.Marshal(swagger)
	if err != nil {
		return err
	}

	registerDoc.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          swagger.Info.Version,
			Title:            swagger.Info.Title,
			Description:      swagger.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(doc),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
