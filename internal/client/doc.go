// Package client talks to the trip-journal backend over HTTP/JSON.
//
// # Overview
//
//  1. Client is the API contract: register/login/logout plus CRUD for trips,
//     events and media.
//  2. HTTPClient implements it. Every call goes through one generic send
//     primitive driven by an endpoint table (method, path, success policy).
//  3. TokenSession is the token holder the client reads before each request
//     and updates after register/login/logout; see package session.
//
// # Error Handling
//
// Failures are classified so callers can branch with errors.Is / errors.As:
// ErrInvalidURL, ErrInvalidResponse, ErrDecoding, ErrEncoding and *HTTPError.
// Nothing is retried.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. Calls are independent and honor
// context cancellation.
package client
