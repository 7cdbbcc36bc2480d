package middleware

import (
	"mime"
	"net/http"
	"strings"
)

// MethodOverride honours the `_method` form field on multipart POSTs, so a
// client that can only POST multipart bodies can still reach PUT/PATCH
// routes. The multipart body is parsed here with maxMemory and left on the
// request for the handler.
func MethodOverride(maxMemory int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if mediaType != "multipart/form-data" && mediaType != "application/x-www-form-urlencoded" {
				next.ServeHTTP(w, r)
				return
			}

			if mediaType == "multipart/form-data" {
				r.Body = http.MaxBytesReader(w, r.Body, maxMemory)
				if err := r.ParseMultipartForm(maxMemory); err != nil {
					next.ServeHTTP(w, r)
					return
				}
			}

			switch m := strings.ToUpper(strings.TrimSpace(r.FormValue("_method"))); m {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = m
			}

			next.ServeHTTP(w, r)
		})
	}
}
