// Package swagger holds the generated OpenAPI registration for the
// dashboard's own surface. Regenerate with `swag init` after changing
// handler annotations.
package swagger

import "github.com/swaggo/swag"

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TMS Dashboard API",
	Description:      "Session-cookie dashboard gateway in front of the TMS REST API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/nav": {
            "get": {
                "tags": ["shell"],
                "summary": "Navigation entries",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
