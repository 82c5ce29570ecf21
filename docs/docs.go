// Package docs registers the OpenAPI document served at /swagger.
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
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "produces": ["application/json"], "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is ready"}, "503": {"description": "Storage unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/goals": {
            "get": {"tags": ["Goals"], "summary": "List goals", "parameters": [{"$ref": "#/parameters/userID"}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}},
            "post": {"tags": ["Goals"], "summary": "Create a goal", "consumes": ["application/json"], "parameters": [{"$ref": "#/parameters/userID"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/goals/{id}": {
            "get": {"tags": ["Goals"], "summary": "Get goal detail", "parameters": [{"$ref": "#/parameters/userID"}, {"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Goals"], "summary": "Delete a goal", "parameters": [{"$ref": "#/parameters/userID"}, {"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/goals/{id}/breakdown": {
            "post": {"tags": ["Goals"], "summary": "Ingest a generated plan", "consumes": ["application/json"], "parameters": [{"$ref": "#/parameters/userID"}, {"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unusable plan"}, "429": {"description": "Too Many Requests"}}}
        },
        "/api/v1/tasks/{id}/toggle": {
            "patch": {"tags": ["Tasks"], "summary": "Toggle task completion", "parameters": [{"$ref": "#/parameters/userID"}, {"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/tasks/today": {
            "get": {"tags": ["Tasks"], "summary": "Tasks due on a day", "parameters": [{"$ref": "#/parameters/userID"}, {"in": "query", "name": "date", "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/activity/summary": {
            "get": {"tags": ["Activity"], "summary": "Activity summary", "parameters": [{"$ref": "#/parameters/userID"}, {"in": "query", "name": "period", "type": "string"}, {"in": "query", "name": "offset", "type": "integer"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/activity/histogram": {
            "get": {"tags": ["Activity"], "summary": "Completed tasks per period", "parameters": [{"$ref": "#/parameters/userID"}, {"in": "query", "name": "period", "type": "string"}, {"in": "query", "name": "count", "type": "integer"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/activity/stats": {
            "get": {"tags": ["Activity"], "summary": "Stored week/month rollup", "parameters": [{"$ref": "#/parameters/userID"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/activity/moods": {
            "post": {"tags": ["Activity"], "summary": "Log a mood", "consumes": ["application/json"], "parameters": [{"$ref": "#/parameters/userID"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/durations/parse": {
            "get": {"tags": ["Tools"], "summary": "Parse an estimated duration", "parameters": [{"in": "query", "name": "text", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "parameters": {
        "userID": {"in": "header", "name": "X-User-ID", "type": "string", "required": true, "description": "Caller user id (UUID)"},
        "id": {"in": "path", "name": "id", "type": "string", "required": true}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Goal Planner API",
	Description:      "Goals broken down into day-capped task plans, with activity analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
