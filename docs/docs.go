// Package docs registers the OpenAPI description served by the swagger route.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "DucCV"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/profile/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the fields of the caller's token with all markup stripped",
                "produces": ["application/json"],
                "tags": ["Profile"],
                "summary": "Current profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.ResponseData"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/handler.ProfileResponse"}}}
                            ]
                        }
                    },
                    "304": {"description": "Not Modified"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ResponseData"}},
                    "419": {"description": "Token expired", "schema": {"$ref": "#/definitions/response.ResponseData"}}
                }
            }
        },
        "/v1/sanitize": {
            "post": {
                "description": "Strips all markup from value and truncates it to maxLength characters",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sanitizer"],
                "summary": "Sanitize text",
                "parameters": [
                    {
                        "description": "Value to sanitize",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.SanitizeRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.ResponseData"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/handler.SanitizeResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ResponseData"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ProfileResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "userId": {"type": "integer"}
            }
        },
        "handler.SanitizeRequest": {
            "type": "object",
            "properties": {
                "maxLength": {"type": "integer", "minimum": 0},
                "value": {"type": "string"}
            }
        },
        "handler.SanitizeResponse": {
            "type": "object",
            "properties": {
                "truncated": {"type": "boolean"},
                "value": {"type": "string"}
            }
        },
        "response.ResponseData": {
            "type": "object",
            "properties": {
                "data": {},
                "ec": {"type": "integer"},
                "error": {"type": "string"},
                "msg": {"type": "string"},
                "total": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT authorization header",
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "PROFILE GUARD APIs",
	Description:      "Sanitized profile and text APIs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
