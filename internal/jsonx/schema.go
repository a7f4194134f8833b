package jsonx

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"cardscan/internal/domain"
)

// visionPayloadSchema constrains what the vision model may return: a
// verbatim transcript plus the contact-card field shape. Alias keys
// (company, name, phone) are accepted alongside the canonical ones.
const visionPayloadSchema = `{
	"type": "object",
	"properties": {
		"transcript": {"type": "string"},
		"fields": {
			"type": "object",
			"properties": {
				"companyName": {"type": "string"},
				"company": {"type": "string"},
				"contactPerson": {"type": "string"},
				"name": {"type": "string"},
				"designation": {"type": "string"},
				"email": {"type": "string"},
				"mobile": {"type": "string"},
				"phone": {"type": "string"},
				"website": {"type": "string"},
				"address": {"type": "string"},
				"interestedProducts": {"type": "array", "items": {"type": "string"}},
				"remarks": {"type": "string"}
			}
		}
	},
	"required": ["fields"]
}`

var compiledVisionSchema = jsonschema.MustCompileString("vision_payload.json", visionPayloadSchema)

// ValidateVisionPayload checks a parsed model payload against the expected
// shape. Violations surface as domain.ErrMalformedResponse so callers can
// tell a schema problem from a truncation problem.
func ValidateVisionPayload(payload string) error {
	var v interface{}
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return &RepairError{Err: err, ResponseLen: len(payload)}
	}
	if err := compiledVisionSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: schema violation: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}
