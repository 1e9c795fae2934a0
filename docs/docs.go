// Package docs registers the swagger document served at /swagger. It is
// maintained by hand in the swag template format, so `swag init` can take
// over regeneration later.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/board": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Pipeline board",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/board/move": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Board"],
                "summary": "Move a board item",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/board/meeting/confirm": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["Board"],
                "summary": "Confirm a pending meeting",
                "responses": {
                    "204": {"description": "confirmed"},
                    "409": {"description": "Conflict"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/board/meeting/cancel": {
            "post": {
                "tags": ["Board"],
                "summary": "Cancel a pending meeting",
                "responses": {
                    "204": {"description": "cancelled"}
                }
            }
        },
        "/inquiries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Inquiries"],
                "summary": "List inquiries",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inquiries"],
                "summary": "Create an inquiry",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/opportunities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Opportunities"],
                "summary": "List opportunities",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/opportunities/{id}/quote": {
            "post": {
                "produces": ["application/pdf"],
                "tags": ["Opportunities"],
                "summary": "Generate a quotation PDF",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Evermore Operations API",
	Description:      "Internal console for the Evermore wedding agency: sales pipeline board, inquiries, opportunities and quotations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
