// Package tripv1connect wires the tripledger.v1 services to connect-go.
package tripv1connect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// CodecName is the Connect codec name, selected with Content-Type
// application/json.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return CodecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithJSON registers the JSON codec. Handlers and clients built by this
// package apply it automatically.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
