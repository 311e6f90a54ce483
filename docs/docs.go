// Package docs holds the OpenAPI description of the GSTR-1 API served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/gstr1/overview": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns one summary row per GSTR-1 sub-category with record counts and tax totals",
                "produces": ["application/json"],
                "tags": ["gstr1"],
                "summary": "GSTR-1 overview",
                "parameters": [
                    {"type": "string", "description": "Company GSTIN", "name": "company_gstin", "in": "query", "required": true},
                    {"type": "string", "description": "Start posting date (YYYY-MM-DD)", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "End posting date (YYYY-MM-DD)", "name": "to", "in": "query", "required": true},
                    {"type": "string", "description": "Company name", "name": "company", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/gstr1/invoices": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists the invoice rows of one category, optionally narrowed to a sub-category",
                "produces": ["application/json"],
                "tags": ["gstr1"],
                "summary": "GSTR-1 drill-down",
                "parameters": [
                    {"type": "string", "description": "Company GSTIN", "name": "company_gstin", "in": "query", "required": true},
                    {"type": "string", "description": "Start posting date (YYYY-MM-DD)", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "End posting date (YYYY-MM-DD)", "name": "to", "in": "query", "required": true},
                    {"type": "string", "description": "Company name", "name": "company", "in": "query"},
                    {"type": "string", "description": "Category label or code (B2B, EXP, B2CL, B2CS, NIL_EXEMPT, CDNR, CDNUR)", "name": "category", "in": "query", "required": true},
                    {"type": "string", "description": "Sub-category label", "name": "sub_category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/gstr1/classified": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns every invoice row in the period annotated with its category and sub-category",
                "produces": ["application/json"],
                "tags": ["gstr1"],
                "summary": "Classified invoice rows",
                "parameters": [
                    {"type": "string", "description": "Company GSTIN", "name": "company_gstin", "in": "query", "required": true},
                    {"type": "string", "description": "Start posting date (YYYY-MM-DD)", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "End posting date (YYYY-MM-DD)", "name": "to", "in": "query", "required": true},
                    {"type": "string", "description": "Company name", "name": "company", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/handler.APIError"},
                "meta": {"$ref": "#/definitions/handler.Meta"},
                "success": {"type": "boolean"}
            }
        },
        "handler.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "GSTR-1 API",
	Description:      "Classifies sales invoices into GSTR-1 return sections and summarises them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
