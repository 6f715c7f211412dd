package middleware

import (
	"net/http"
	"strings"
)

// OverrideField is the form field / query parameter carrying the intended
// verb of an HTML form POST.
const OverrideField = "_method"

// MethodOverride lets HTML forms, which only speak GET and POST, reach the
// natively registered PUT and DELETE routes. A POST carrying _method=PUT or
// _method=DELETE (hidden field or query parameter) is rewritten before
// routing; everything else passes through untouched.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.URL.Query().Get(OverrideField)
			if method == "" {
				method = r.PostFormValue(OverrideField)
			}

			switch strings.ToUpper(method) {
			case http.MethodPut, http.MethodDelete:
				r.Method = strings.ToUpper(method)
			}
		}

		next.ServeHTTP(w, r)
	})
}
