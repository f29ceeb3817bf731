package ledgerv1

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// Codec marshals API messages as JSON. It is registered under both content
// subtypes browsers and curl send, so "application/json" and
// "application/json; charset=utf-8" reach the same decoder.
type Codec struct {
	name string
}

var (
	// JSONCodec handles Content-Type application/json.
	JSONCodec connect.Codec = Codec{name: "json"}
	// JSONCharsetCodec handles Content-Type application/json; charset=utf-8.
	JSONCharsetCodec connect.Codec = Codec{name: "json; charset=utf-8"}
)

// Name returns the content subtype.
func (c Codec) Name() string { return c.name }

// Marshal encodes a message.
func (c Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal decodes a message. An empty body decodes to the zero message.
func (c Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
