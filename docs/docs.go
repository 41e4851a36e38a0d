// Package docs registers the Swagger spec served at /swagger. Regenerate the
// template with `swag init` after changing handler annotations.
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
        "/store/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront - Products"],
                "summary": "Get storefront products with filters",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/store/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront - Products"],
                "summary": "Get a single storefront product",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/store/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront - Categories"],
                "summary": "Get storefront categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/store/categories/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront - Categories"],
                "summary": "Resolve a category slug",
                "parameters": [{"type": "string", "name": "slug", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/store/filters/metadata": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Storefront - Filters"],
                "summary": "Get all filter metadata",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Storefront Catalog API",
	Description:      "Faceted product filter, sort and pagination engine for the storefront catalog",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
