// Package ledgerv1connect wires the splitledger.v1 services to Connect
// handlers and clients. Every handler and client speaks JSON through
// ledgerv1.Codec.
package ledgerv1connect

import (
	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api/ledgerv1"
)

func handlerOptions(opts []connect.HandlerOption) connect.HandlerOption {
	return connect.WithHandlerOptions(append([]connect.HandlerOption{
		connect.WithCodec(ledgerv1.JSONCodec),
		connect.WithCodec(ledgerv1.JSONCharsetCodec),
	}, opts...)...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(ledgerv1.JSONCodec)}, opts...)
}
