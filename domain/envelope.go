package domain

import (
	"encoding/json"
	"errors"
	"strconv"
)

var ErrNotJSON = errors.New("result is not json")

// Envelope is the normalized response of every notifications api call.
// Exactly one of Data and Raw carries the response body.
type Envelope struct {
	Status string
	Data   json.RawMessage
	Raw    []byte
}

// NewEnvelope builds an envelope from a status code and a response body.
// A body that is not valid json is kept as raw bytes.
func NewEnvelope(statusCode int, body []byte) Envelope {
	env := Envelope{Status: strconv.Itoa(statusCode)}
	if json.Valid(body) {
		env.Data = json.RawMessage(body)
	} else {
		env.Raw = body
		if env.Raw == nil {
			env.Raw = []byte{}
		}
	}
	return env
}

func (e Envelope) StatusCode() int {
	code, _ := strconv.Atoi(e.Status)
	return code
}

func (e Envelope) IsJSON() bool {
	return e.Data != nil
}

// Decode unmarshals a json result into v.
func (e Envelope) Decode(v any) error {
	if !e.IsJSON() {
		return ErrNotJSON
	}
	return json.Unmarshal(e.Data, v)
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	var result any = string(e.Raw)
	if e.IsJSON() {
		result = e.Data
	}
	return json.Marshal(struct {
		Status string `json:"status"`
		Result any    `json:"result"`
	}{
		Status: e.Status,
		Result: result,
	})
}
