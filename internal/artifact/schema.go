package artifact

// bundleSchema is the JSON Schema every model bundle must satisfy before decode.
const bundleSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["model", "threshold", "features"],
  "properties": {
    "schema_version": {
      "type": "integer",
      "minimum": 1
    },
    "model": {
      "type": "object",
      "required": ["type", "intercept", "coefficients"],
      "properties": {
        "type": {
          "type": "string",
          "enum": ["logistic_regression"]
        },
        "intercept": {
          "type": "number"
        },
        "coefficients": {
          "type": "array",
          "items": {
            "type": "number"
          },
          "minItems": 1
        }
      }
    },
    "threshold": {
      "type": "number",
      "minimum": 0,
      "maximum": 1
    },
    "features": {
      "type": "array",
      "items": {
        "type": "string",
        "minLength": 1
      },
      "minItems": 1,
      "uniqueItems": true
    }
  }
}`
