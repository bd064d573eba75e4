// Package onboard holds the generated swagger document for the onboard API.
//
//go:generate swag init --parseDependency -g internal/onboard/http/router.go -d ../../ -o . --ot go
package onboard

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/onboard"
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
        "/api/signup": {
            "post": {
                "description": "Create an account and start a session. The session cookie is set on success.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Sign up",
                "parameters": [
                    {
                        "description": "username, email, password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.SignupRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Signup successful.",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "invalid_request, missing_field",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "duplicate_email",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "rate_limit_exceeded",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/login": {
            "post": {
                "description": "Check credentials and start a session. Unknown email and wrong password are reported identically.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "email, password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login successful.",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "invalid_request",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "invalid_credentials",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "rate_limit_exceeded",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/avatar": {
            "post": {
                "description": "Store the chosen avatar on the account and the current session.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Profile"
                ],
                "summary": "Select avatar",
                "parameters": [
                    {
                        "description": "avatar_url",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.AvatarRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Avatar selected.",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "no_active_session, missing_field, session_store_mismatch",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/personalize": {
            "post": {
                "description": "Replace the preference set on the account and the current session.\nPreferences may be an array of strings or an object whose truthy keys are taken.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Profile"
                ],
                "summary": "Personalise",
                "parameters": [
                    {
                        "description": "preferences",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.PersonalizeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Registration complete.",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "no_active_session, invalid_request",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/me": {
            "get": {
                "description": "Return the profile snapshot held by the current session.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Profile"
                ],
                "summary": "Current session",
                "responses": {
                    "200": {
                        "description": "username, email, avatar_url, preferences, expires_at",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ProfileResponse"
                        }
                    },
                    "400": {
                        "description": "no_active_session",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/logout": {
            "get": {
                "description": "Destroy the current session, expire the cookie and redirect home.",
                "tags": [
                    "Accounts"
                ],
                "summary": "Log out",
                "responses": {
                    "302": {
                        "description": "Found"
                    }
                }
            }
        },
        "/livez": {
            "get": {
                "description": "Liveness probe endpoint returning basic service health status, uptime, and version information\nThis endpoint always returns 200 OK if the service is running",
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
                            "$ref": "#/definitions/onboardsdk.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Readiness probe endpoint returning service health status and the state of the account store",
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
                            "$ref": "#/definitions/onboardsdk.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "status, uptime, version, checks - service not ready",
                        "schema": {
                            "$ref": "#/definitions/onboardsdk.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "onboardsdk.AvatarRequest": {
            "type": "object",
            "properties": {
                "avatar_url": {
                    "type": "string"
                }
            }
        },
        "onboardsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "description": "Error is the machine readable code (e.g. \"duplicate_email\")",
                    "type": "string"
                },
                "error_description": {
                    "description": "ErrorDescription is a short human readable message",
                    "type": "string"
                }
            }
        },
        "onboardsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "store": {
                    "type": "string"
                }
            }
        },
        "onboardsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {
                    "$ref": "#/definitions/onboardsdk.HealthChecks"
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
        "onboardsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "onboardsdk.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "onboardsdk.PersonalizeRequest": {
            "type": "object",
            "properties": {
                "preferences": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "onboardsdk.ProfileResponse": {
            "type": "object",
            "properties": {
                "avatar_url": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "expires_at": {
                    "type": "string"
                },
                "preferences": {
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
        "onboardsdk.SignupRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Onboard API",
	Description:      "Account signup, login, avatar selection and preference personalisation.\n\nSessions are carried in the onboard_session cookie set by signup and login.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
