// Package docs registers the OpenAPI document served under /v1/swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Service and database status", "responses": {"200": {"description": "OK"}, "503": {"description": "Database unreachable"}}}
        },
        "/users/signup": {
            "post": {"tags": ["users"], "summary": "Register a new account", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}, "409": {"description": "Duplicate email, mobile number or user name"}}}
        },
        "/users/signin": {
            "post": {"tags": ["users"], "summary": "Sign in with email and password", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid password"}, "404": {"description": "User not found"}}}
        },
        "/users/signout": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Sign out", "responses": {"200": {"description": "OK"}, "401": {"description": "Not signed in"}}}
        },
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List accounts", "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update the signed-in account", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete the signed-in account", "responses": {"204": {"description": "No Content"}}}
        },
        "/users/password": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Change password", "responses": {"200": {"description": "OK"}, "400": {"description": "Wrong current password"}}}
        },
        "/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get one account", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update an account (own only)", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete an account (own only)", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}}
        },
        "/companies": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["companies"], "summary": "List companies", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["companies"], "summary": "Add a company", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}, "409": {"description": "Company email exists"}}}
        },
        "/companies/search": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["companies"], "summary": "Search companies by name", "parameters": [{"type": "string", "name": "companyName", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/companies/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["companies"], "summary": "Get one company", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["companies"], "summary": "Update a company (its HR only)", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["companies"], "summary": "Delete a company (its HR only)", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}}
        },
        "/jobs": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "List jobs", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Post a job", "responses": {"201": {"description": "Created"}, "404": {"description": "No company owned"}}}
        },
        "/jobs/jobs-for-company": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "List the jobs of one company", "parameters": [{"type": "string", "name": "companyName", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Company not found"}}}
        },
        "/jobs/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Get one job", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Update a job", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Delete a job", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
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
	Host:             "localhost:8000",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Job Board API",
	Description:      "Multi-tenant job board: accounts, companies and job postings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
