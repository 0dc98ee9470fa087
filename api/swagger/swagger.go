package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Study Notes API",
        "description": "Users, their subjects and the study notes inside them.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "tags": [
        {"name": "Users", "description": "User accounts"},
        {"name": "Subjects", "description": "Subjects owned by a user"},
        {"name": "Study Notes", "description": "Notes inside a subject"}
    ],
    "paths": {
        "/health": {"get": {"summary": "Health check", "responses": {"200": {"description": "OK"}}}},
        "/ready": {"get": {"summary": "Readiness check", "responses": {"200": {"description": "Ready"}, "503": {"description": "Store unreachable"}}}},
        "/api/v1/users": {
            "get": {
                "tags": ["Users"],
                "summary": "Count users",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "integer"}}}
            }
        },
        "/api/v1/users/all": {
            "delete": {
                "tags": ["Users"],
                "summary": "Delete every user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/users/{username}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user by username",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/username"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete user",
                "produces": ["text/plain"],
                "parameters": [{"$ref": "#/parameters/username"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Username does not exist", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/users/{username}/{email}": {
            "post": {
                "tags": ["Users"],
                "summary": "Create user",
                "produces": ["text/plain"],
                "parameters": [
                    {"$ref": "#/parameters/username"},
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Username and/or email already taken", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/users/{username}/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/username"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Subject"}}},
                    "400": {"description": "Username does not exist"}
                }
            }
        },
        "/api/v1/users/{username}/subjects/{subjectName}": {
            "post": {
                "tags": ["Subjects"],
                "summary": "Create subject",
                "produces": ["text/plain"],
                "parameters": [{"$ref": "#/parameters/username"}, {"$ref": "#/parameters/subjectName"}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown user or subject name taken", "schema": {"type": "string"}},
                    "409": {"description": "User is being modified", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete subject",
                "produces": ["text/plain"],
                "parameters": [{"$ref": "#/parameters/username"}, {"$ref": "#/parameters/subjectName"}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown user or subject", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/users/{username}/subjects/{subjectName}/{newSubjectName}": {
            "put": {
                "tags": ["Subjects"],
                "summary": "Rename subject",
                "produces": ["text/plain"],
                "parameters": [
                    {"$ref": "#/parameters/username"},
                    {"$ref": "#/parameters/subjectName"},
                    {"name": "newSubjectName", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown user or subject, or new name taken", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/users/{username}/subjects/{subjectName}/notes": {
            "get": {
                "tags": ["Study Notes"],
                "summary": "List study notes",
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/username"}, {"$ref": "#/parameters/subjectName"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudyNote"}}},
                    "400": {"description": "Unknown user or subject"}
                }
            },
            "post": {
                "tags": ["Study Notes"],
                "summary": "Append study note",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "parameters": [
                    {"$ref": "#/parameters/username"},
                    {"$ref": "#/parameters/subjectName"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudyNoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid body, unknown user or subject", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/users/{username}/subjects/{subjectName}/notes/export": {
            "get": {
                "tags": ["Study Notes"],
                "summary": "Download study notes",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"$ref": "#/parameters/username"},
                    {"$ref": "#/parameters/subjectName"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Unknown user, subject or format", "schema": {"type": "string"}}
                }
            }
        }
    },
    "parameters": {
        "username": {"name": "username", "in": "path", "required": true, "type": "string"},
        "subjectName": {"name": "subjectName", "in": "path", "required": true, "type": "string"}
    },
    "definitions": {
        "StudyNote": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "colour": {"type": "string"},
                "creationDate": {"type": "string", "format": "date-time"},
                "isFavourite": {"type": "boolean"}
            }
        },
        "CreateStudyNoteRequest": {
            "type": "object",
            "required": ["content"],
            "properties": {
                "content": {"type": "string"},
                "colour": {"type": "string"},
                "isFavourite": {"type": "boolean"},
                "creationDate": {"type": "string", "description": "Date (2006-01-02) or RFC 3339 timestamp; defaults to now", "example": "2024-01-01"}
            }
        },
        "Subject": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "array", "items": {"$ref": "#/definitions/StudyNote"}}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "creationDate": {"type": "string", "format": "date-time"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "subjects": {"type": "array", "items": {"$ref": "#/definitions/Subject"}}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
