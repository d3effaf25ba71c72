// Package api implements the HTTP transport layer: request decoding,
// routing handler logic to the service layer, and mapping service
// outcomes to status codes and JSON bodies. No business rules live here.
package api
