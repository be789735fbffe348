// Package utils provides general-purpose helpers used across the client:
// the resty HTTP client constructor, id generation and access token
// inspection.
package utils
