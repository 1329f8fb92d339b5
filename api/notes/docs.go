// Package notes holds the Swagger document served at /swagger/.
package notes

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/technotes"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "description": "Verifies credentials and returns an HS256 access token. Limited to 5 attempts per minute per client address.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Log in",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/notesdk.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "missing fields",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "401": {
                        "description": "bad credentials or inactive user",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "429": {
                        "description": "too many attempts",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "username, password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/notesdk.LoginRequest"
                        }
                    }
                ]
            }
        },
        "/livez": {
            "get": {
                "description": "Liveness probe returning status, uptime and version. Always 200 while the process runs.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version",
                        "schema": {
                            "$ref": "#/definitions/notesdk.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Readiness probe that pings the database.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version, checks",
                        "schema": {
                            "$ref": "#/definitions/notesdk.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "database unreachable",
                        "schema": {
                            "$ref": "#/definitions/notesdk.HealthResponse"
                        }
                    }
                }
            }
        },
        "/notes": {
            "get": {
                "description": "Returns every note with its owner's username attached.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notes"
                ],
                "summary": "List notes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/notesdk.Note"
                            }
                        }
                    },
                    "400": {
                        "description": "no notes",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a note. Titles are unique under Polish case-insensitive collation.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notes"
                ],
                "summary": "Create note",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "missing fields or invalid user reference",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "409": {
                        "description": "duplicate title",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "user, title, text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/notesdk.CreateNoteRequest"
                        }
                    }
                ]
            },
            "patch": {
                "description": "Overwrites user, title, text and completed. All fields are required; completed must be a boolean.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notes"
                ],
                "summary": "Update note",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "missing fields or unknown id",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "409": {
                        "description": "duplicate title",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "id, user, title, text, completed",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/notesdk.UpdateNoteRequest"
                        }
                    }
                ]
            },
            "delete": {
                "description": "Deletes a note by id and returns a confirmation string.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notes"
                ],
                "summary": "Delete note",
                "responses": {
                    "200": {
                        "description": "confirmation",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "missing or unknown id",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/notesdk.DeleteRequest"
                        }
                    }
                ]
            }
        },
        "/users": {
            "get": {
                "description": "Returns every user. Passwords are never included.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/notesdk.User"
                            }
                        }
                    },
                    "400": {
                        "description": "no users",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "description": "Creates an active user. Usernames are unique under Polish case-insensitive collation.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Create user",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "missing fields or invalid data",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "409": {
                        "description": "duplicate username",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "username, password, roles",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/notesdk.CreateUserRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "description": "Overwrites username, roles and active. A non-empty password is re-hashed.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Update user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "missing fields or unknown id",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "409": {
                        "description": "duplicate username",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "id, username, roles, active, password?",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/notesdk.UpdateUserRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Deletes a user that has no notes and returns a confirmation string.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Delete user",
                "responses": {
                    "200": {
                        "description": "confirmation",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "missing id, user has notes, or unknown id",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/notesdk.MessageResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/notesdk.DeleteRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "notesdk.CreateNoteRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "user": {
                    "type": "string"
                }
            }
        },
        "notesdk.CreateUserRequest": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string"
                },
                "roles": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "notesdk.DeleteRequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                }
            }
        },
        "notesdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {
                    "type": "string"
                }
            }
        },
        "notesdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {
                    "$ref": "#/definitions/notesdk.HealthChecks"
                },
                "status": {
                    "type": "string"
                },
                "uptime": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "notesdk.LoginRequest": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "notesdk.LoginResponse": {
            "type": "object",
            "properties": {
                "accessToken": {
                    "type": "string"
                }
            }
        },
        "notesdk.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "notesdk.Note": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "completed": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "user": {
                    "type": "string"
                },
                "username": {
                    "description": "Username of the owner; empty when the owner no longer exists.",
                    "type": "string"
                }
            }
        },
        "notesdk.UpdateNoteRequest": {
            "type": "object",
            "properties": {
                "completed": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "user": {
                    "type": "string"
                }
            }
        },
        "notesdk.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                },
                "password": {
                    "description": "Password is only changed when non-empty.",
                    "type": "string"
                },
                "roles": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "notesdk.User": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                },
                "roles": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "updatedAt": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT access token from /auth/login. Format: \"Bearer {token}\". Only enforced when AUTH_REQUIRED is set.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:3500",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "TechNotes API",
	Description:      "Notes and user management for the repair shop.\n\nTitles and usernames are unique under Polish case-insensitive collation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
