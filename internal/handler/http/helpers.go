package http

import (
	"net/http"
	"strconv"
)

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed so DTO validation can apply its defaults.
func queryInt(r *http.Request, key string) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return 0
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return intVal
}

// queryStr returns a pointer to the query parameter value, or nil when absent.
func queryStr(r *http.Request, key string) *string {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	return &val
}
