package rpc

import (
	"bytes"
	"encoding/json"
	"net/mail"
)

// Validation messages, part of the wire contract with existing callers.
const (
	msgMissingField = "Missing data for required field."
	msgUnknownField = "Unknown field."
	msgNotAString   = "Not a valid string."
	msgInvalidEmail = "Not a valid email address."
)

// FieldErrors maps a request field to the list of problems found with it.
// It serializes as the per-field message mapping callers already consume.
type FieldErrors map[string][]string

func (f FieldErrors) add(field, msg string) {
	f[field] = append(f[field], msg)
}

// decodeParams decodes a JSON request body into string fields, enforcing the
// method's field set: required fields must be present, unknown fields are
// rejected rather than ignored, and every value must be a string. All
// problems are collected, not just the first; fields that did decode are
// still returned so later checks can add their own messages. A body that is
// not a JSON object at all is reported through the error return instead.
func decodeParams(body []byte, required []string, optional ...string) (map[string]string, FieldErrors, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, err
	}

	known := make(map[string]bool, len(required)+len(optional))
	for _, f := range required {
		known[f] = true
	}
	for _, f := range optional {
		known[f] = true
	}

	fieldErrs := FieldErrors{}
	params := make(map[string]string, len(raw))

	for field, value := range raw {
		if !known[field] {
			fieldErrs.add(field, msgUnknownField)
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			fieldErrs.add(field, msgNotAString)
			continue
		}
		params[field] = s
	}

	for _, field := range required {
		if _, ok := raw[field]; !ok {
			fieldErrs.add(field, msgMissingField)
		}
	}

	return params, fieldErrs, nil
}

// validEmail applies the same syntax check the schema layer performed:
// a single parsable address with no display name.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Name == "" && addr.Address == email
}
