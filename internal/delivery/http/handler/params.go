package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// uintQuery parses an optional positive integer query parameter, returning
// nil when absent or malformed. A malformed filter degrades to "no filter"
// rather than a 400, matching how the public site calls these endpoints.
func uintQuery(r *http.Request, name string) *uint {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return nil
	}
	v := uint(value)
	return &v
}

// boolQuery matches "true" in any casing, as callers send both ?x=true
// and ?x=True.
func boolQuery(r *http.Request, name string) bool {
	return strings.EqualFold(r.URL.Query().Get(name), "true")
}

func intQuery(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}

// uintPath parses a required numeric path variable.
func uintPath(r *http.Request, name string) (uint, bool) {
	value, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
