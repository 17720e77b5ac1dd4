// Package auth implements API key authentication for the HTTP API.
package auth
