// Package docs registra el Swagger del panel en swag. Mantener en sync con
// las anotaciones godoc de los handlers (swag init -g cmd/panel/main.go).
package docs

import "github.com/swaggo/swag"

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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Inicio del panel (portada o resumen)",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Inicia sesión contra el backend y guarda el token",
                "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/session.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Alta de usuario del panel",
                "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/auth.RegisterInput"}}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/elderly-persons": {
            "get": {
                "produces": ["application/json"],
                "tags": ["elderly-persons"],
                "summary": "Lista adultos mayores",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/persons.ElderlyPerson"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["elderly-persons"],
                "summary": "Alta de adulto mayor",
                "parameters": [{"in": "body", "name": "form", "required": true, "schema": {"$ref": "#/definitions/persons.Form"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/persons.ElderlyPerson"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/elderly-persons/{personID}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["elderly-persons"],
                "summary": "Edita un adulto mayor",
                "parameters": [
                    {"type": "string", "name": "personID", "in": "path", "required": true},
                    {"in": "body", "name": "form", "required": true, "schema": {"$ref": "#/definitions/persons.Form"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/persons.ElderlyPerson"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/elderly-persons/user/{userID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["elderly-persons"],
                "summary": "Adultos mayores a cargo de un usuario",
                "parameters": [{"type": "string", "name": "userID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/persons.ElderlyPerson"}}}
                }
            }
        },
        "/session/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Renueva el token de la sesión",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Lista eventos con fecha y hora para mostrar",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Alta de evento",
                "parameters": [{"in": "body", "name": "form", "required": true, "schema": {"$ref": "#/definitions/events.Form"}}],
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/events/{eventID}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Edita un evento",
                "parameters": [
                    {"type": "string", "name": "eventID", "in": "path", "required": true},
                    {"in": "body", "name": "form", "required": true, "schema": {"$ref": "#/definitions/events.Form"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/devices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["devices"],
                "summary": "Lista dispositivos",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/devices/{deviceID}/activate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["devices"],
                "summary": "Activa o desactiva un dispositivo",
                "parameters": [{"type": "string", "name": "deviceID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/alerts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["alerts"],
                "summary": "Lista alertas",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/alerts/critical/{personID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["alerts"],
                "summary": "Alertas críticas de un adulto mayor",
                "parameters": [{"type": "string", "name": "personID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "respond.ErrorBody": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "session.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "auth.RegisterInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "persons.Form": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "age": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "persons.ElderlyPerson": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "age": {"type": "integer"},
                "address": {"type": "string"},
                "is_active": {"type": "boolean"}
            }
        },
        "events.Form": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "event_type": {"type": "string"},
                "start_datetime": {"type": "string"},
                "end_datetime": {"type": "string"},
                "location": {"type": "string"},
                "description": {"type": "string"},
                "elderly_person_id": {"type": "string"}
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
	Title:            "eldercare-panel",
	Description:      "Panel de administración del servicio de monitoreo de adultos mayores.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
