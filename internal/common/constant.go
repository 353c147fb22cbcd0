// Package common contains shared constants and small helpers used across
// the tripjournal client packages.
package common

// HTTP header names and media types the client sets on outbound requests.
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"
	HeaderUserAgent     = "User-Agent"

	MediaTypeJSON = "application/json"
	MediaTypeForm = "application/x-www-form-urlencoded"

	BearerScheme = "Bearer"
)

// Keys under which the client persists state in the local metadata table.
const (
	AuthTokenKey  = "auth_token"
	StoreSaltKey  = "store_salt"
	PrefKeyPrefix = "pref:"
	PrefTokenKey  = "token"
)

// DefaultBaseURL is the backend address used when nothing else is configured.
const DefaultBaseURL = "http://localhost:8000"
