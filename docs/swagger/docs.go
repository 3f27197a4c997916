// Package swagger registers the OpenAPI document served under /api/docs.
// Regenerate with: swag init -g internal/api/main_annotations.go -o docs/swagger
package swagger

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
        "/entries": {
            "get": {
                "description": "Proxies the contents listing of the archive directory without filtering.",
                "produces": ["application/json"],
                "tags": ["Versions"],
                "summary": "Raw contents listing",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.EntryListResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/versions": {
            "get": {
                "description": "Returns the current link followed by one link per archived version directory, in listing order. A failed listing fetch still answers 200 with the current link and an error object.",
                "produces": ["application/json"],
                "tags": ["Versions"],
                "summary": "List archived versions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.VersionListResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.EntryListResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/api.EntryResponse"}}
            }
        },
        "api.EntryResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "api.VersionListResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/api.ErrorResponse"},
                "versions": {"type": "array", "items": {"$ref": "#/definitions/api.VersionResponse"}}
            }
        },
        "api.VersionResponse": {
            "type": "object",
            "properties": {
                "href": {"type": "string"},
                "html": {"type": "string"},
                "label": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "archiv-index API",
	Description:      "Archived documentation versions of a repository, as listed by the GitHub contents API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
