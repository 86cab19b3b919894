// Package proto holds the generated groupledger.v1 messages. Regenerate with
// buf from the repository root after editing proto/groupledger/v1.
package proto

//go:generate sh -c "cd ../.. && buf generate"
