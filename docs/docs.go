// Package docs holds the OpenAPI description served under /swagger.
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
        "/api/v1/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {
                        "description": "New user",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.createUserRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by id",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.updateUserRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "status": {"type": "integer"},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "path": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/handler.FieldError"}}
            }
        },
        "handler.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.createUserRequest": {
            "type": "object",
            "required": ["age", "email", "first_name", "last_name", "password"],
            "properties": {
                "email": {"type": "string"},
                "age": {"type": "integer"},
                "password": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "age": {"type": "integer"},
                "password": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "age": {"type": "integer"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dependencies": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Identity Service API",
	Description:      "Create, fetch and update user accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
