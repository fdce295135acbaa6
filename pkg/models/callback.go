package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Represents the body posted by the landing page callback form
type CallbackRequest struct {
	Phone Phone `json:"phone" binding:"required,truthy"`
}

// CallbackResponse is the uniform reply shape of the callback endpoint
type CallbackResponse struct {
	Message string `json:"message"`
}

// WebhookPayload is the body relayed to the automation webhook
type WebhookPayload struct {
	Phone Phone `json:"phone"`
}

// Phone keeps the phone field exactly as it was sent, so a number the
// form did not quote is relayed unchanged
type Phone json.RawMessage

// PhoneString encodes a plain phone number
func PhoneString(s string) Phone {
	b, _ := json.Marshal(s)
	return Phone(b)
}

func (p Phone) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

func (p *Phone) UnmarshalJSON(data []byte) error {
	*p = append((*p)[:0], data...)
	return nil
}

// Truthy reports whether the value counts as a phone number: null, false,
// zero and blank strings do not
func (p Phone) Truthy() bool {
	v, err := p.decode()
	if err != nil {
		return false
	}

	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		// out of range numbers are still non-zero
		return err != nil || f != 0
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}

// String returns the phone text for string values and the raw JSON otherwise
func (p Phone) String() string {
	if v, err := p.decode(); err == nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return string(p)
}

func (p Phone) decode() (any, error) {
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
