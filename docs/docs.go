package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Telco Churn Prediction API",
        "description": "Predict churn for one customer record",
        "version": "1.0"
    },
    "basePath": "/",
    "paths": {
        "/predict_churn": {
            "post": {
                "tags": [
                    "churn"
                ],
                "summary": "Predict churn",
                "description": "Score one customer record",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "customer",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CustomerRecord"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.PredictionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "413": {
                        "description": "Request Entity Too Large",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/schema": {
            "get": {
                "tags": [
                    "churn"
                ],
                "summary": "Input schema",
                "description": "Accepted customer fields with their value domains",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.SchemaResponse"
                        }
                    }
                }
            }
        },
        "/": {
            "get": {
                "tags": [
                    "form"
                ],
                "summary": "Churn form",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "form"
                ],
                "summary": "Submit churn form",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "422": {
                        "description": "Unprocessable Entity"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": [
                    "system"
                ],
                "summary": "Health check",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.CustomerRecord": {
            "type": "object",
            "required": [
                "gender",
                "SeniorCitizen",
                "Partner",
                "Dependents",
                "tenure",
                "PhoneService",
                "MultipleLines",
                "InternetService",
                "OnlineSecurity",
                "OnlineBackup",
                "DeviceProtection",
                "TechSupport",
                "StreamingTV",
                "StreamingMovies",
                "Contract",
                "PaperlessBilling",
                "PaymentMethod",
                "MonthlyCharges",
                "Speed",
                "DataAllowance",
                "TenureGroup"
            ],
            "properties": {
                "gender": {
                    "type": "string",
                    "enum": [
                        "Male",
                        "Female"
                    ]
                },
                "SeniorCitizen": {
                    "type": "integer",
                    "enum": [
                        0,
                        1
                    ]
                },
                "Partner": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No"
                    ]
                },
                "Dependents": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No"
                    ]
                },
                "tenure": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 100
                },
                "PhoneService": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No"
                    ]
                },
                "MultipleLines": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No",
                        "No phone service"
                    ]
                },
                "InternetService": {
                    "type": "string",
                    "enum": [
                        "DSL",
                        "Fiber optic",
                        "No"
                    ]
                },
                "OnlineSecurity": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No",
                        "No internet service"
                    ]
                },
                "OnlineBackup": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No",
                        "No internet service"
                    ]
                },
                "DeviceProtection": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No",
                        "No internet service"
                    ]
                },
                "TechSupport": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No",
                        "No internet service"
                    ]
                },
                "StreamingTV": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No",
                        "No internet service"
                    ]
                },
                "StreamingMovies": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No",
                        "No internet service"
                    ]
                },
                "Contract": {
                    "type": "string",
                    "enum": [
                        "Month-to-month",
                        "One year",
                        "Two year"
                    ]
                },
                "PaperlessBilling": {
                    "type": "string",
                    "enum": [
                        "Yes",
                        "No"
                    ]
                },
                "PaymentMethod": {
                    "type": "string",
                    "enum": [
                        "Electronic check",
                        "Mailed check",
                        "Bank transfer (automatic)",
                        "Credit card (automatic)"
                    ]
                },
                "MonthlyCharges": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 1000
                },
                "Speed": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 1000
                },
                "DataAllowance": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 10000
                },
                "TenureGroup": {
                    "type": "string",
                    "enum": [
                        "0-1yr",
                        "1-2yr",
                        "2-4yr",
                        "4-6yr",
                        "6+yr"
                    ]
                }
            }
        },
        "models.PredictionResult": {
            "type": "object",
            "properties": {
                "churn_probability": {
                    "type": "number"
                },
                "predicted_class": {
                    "type": "string",
                    "enum": [
                        "Churn",
                        "No Churn"
                    ]
                }
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                }
            }
        },
        "contract.Field": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "kind": {
                    "type": "string",
                    "enum": [
                        "string",
                        "integer",
                        "number"
                    ]
                },
                "enum": {
                    "type": "array",
                    "items": {}
                },
                "min": {
                    "type": "number"
                },
                "max": {
                    "type": "number"
                },
                "default": {},
                "help": {
                    "type": "string"
                }
            }
        },
        "handlers.SchemaResponse": {
            "type": "object",
            "properties": {
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/contract.Field"
                    }
                }
            }
        },
        "handlers.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "details": {}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "$ref": "#/definitions/handlers.ErrorBody"
                }
            }
        }
    }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
