/*
Package resp provides a high-level API for responding to HTTP requests with JSON
and an easy way to configure the responses application-wide.

resp provides two main ways of responding to an HTTP request:
  - rendering a value as a JSON success response (Responder.Json)
  - rendering an error document as a JSON error response (Responder.ErrorJson)

A Responder serializes character data exactly once:
values are encoded straight into the response body with no second
byte-encoding pass, so multi-byte text arrives on the wire intact.
*/
package resp
