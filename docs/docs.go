// Package docs registers the OpenAPI document served under /swagger/. Keep it
// in step with the godoc annotations on the handlers.
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
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products page by page",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number (1-based)", "name": "pageNumber", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PagedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Create a new product",
                "parameters": [
                    {"description": "Product to add", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateProductDto"}}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/handlers.ProductDto"},
                        "headers": {"Location": {"type": "string", "description": "URL of the created product"}}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        },
        "/api/products/import": {
            "post": {
                "description": "Rows that fail validation are reported and skipped; the others are created.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Import products from a CSV file",
                "parameters": [
                    {"type": "file", "description": "CSV with name, price and quantity columns", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ImportResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        },
        "/api/products/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Catalog-wide product figures",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/repo.ProductSummary"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductDto"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["products"],
                "summary": "Update a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Updated product", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateProductDto"}}
                ],
                "responses": {
                    "204": {"description": "Updated"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            },
            "delete": {
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted successfully"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and store connectivity probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperr.Response": {
            "type": "object",
            "properties": {
                "Message": {"type": "string"},
                "StatusCode": {"type": "integer"}
            }
        },
        "handlers.CreateProductDto": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"}
            }
        },
        "handlers.ImportResult": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/handlers.ImportRowError"}},
                "importedCount": {"type": "integer"}
            }
        },
        "handlers.ImportRowError": {
            "type": "object",
            "properties": {
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "row": {"type": "integer"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "handlers.PagedResponse": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductDto"}},
                "pageSize": {"type": "integer"},
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "handlers.ProductDto": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"}
            }
        },
        "handlers.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "Errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "Message": {"type": "string"},
                "StatusCode": {"type": "integer"}
            }
        },
        "repo.ProductSummary": {
            "type": "object",
            "properties": {
                "inventoryValue": {"type": "number"},
                "outOfStock": {"type": "integer"},
                "totalProducts": {"type": "integer"},
                "totalQuantity": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Product Catalog API",
	Description:      "REST API for managing product records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
