/*
Package req provides ergonomics for handling an HTTP request.

Package req provides a helper for parsing payloads in an HTTP request.
It supports JSON-encoded payloads and payloads encoded in query parameters.
In most cases, package req expects to parse payloads into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the payload to fields on the struct.
Second, for validating the payload's data meets requirements.

When the shape of a payload is not known ahead of time,
ParsePayload decodes a JSON body into a generic document instead.

A request's body reaches this package already decoded from its transport
byte-encoding into a Go string's character data; parsing never re-applies
byte-decoding, so multi-byte text survives a round trip intact.

By leveraging req, handlers can get data out of an HTTP request into its application specific structs.
Notably, the parade of errors that may propagate from such a task
are translated to switchback sentinel errors in order to provide a consistent interface
for issues that arise across encoding types.
*/
package req
