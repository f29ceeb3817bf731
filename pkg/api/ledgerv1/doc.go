// Package ledgerv1 defines the wire messages of the splitledger.v1 RPC API.
//
// Messages are plain Go structs encoded as JSON by Codec. Handlers and
// clients live in the ledgerv1connect subpackage.
package ledgerv1
