// Package dashboard exposes the demo dashboard's HTTP API: thin route
// handlers that validate form input, build propose-intent envelopes, and
// forward them to the custody backend, returning the backend response
// verbatim. Validation failures map to 400 with {"error": message};
// backend failures map to 500 with the same shape.
//
// The custody backend is reached through the CustodyAPI interface so
// tests can substitute a fake.
package dashboard
