// Package rayid tags every HTTP request with a ray id for log correlation.
package rayid
