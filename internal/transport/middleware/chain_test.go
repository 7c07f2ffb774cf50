package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tracing(name string, order *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name+"-before")
			next.ServeHTTP(w, r)
			*order = append(*order, name+"-after")
		})
	}
}

func TestChain(t *testing.T) {
	tests := []struct {
		name  string
		build func(order *[]string) []Middleware
		want  []string
	}{
		{
			name: "first is outermost",
			build: func(order *[]string) []Middleware {
				return []Middleware{tracing("a", order), tracing("b", order)}
			},
			want: []string{"a-before", "b-before", "handler", "b-after", "a-after"},
		},
		{
			name: "nil entries skipped",
			build: func(order *[]string) []Middleware {
				return []Middleware{nil, tracing("a", order), nil}
			},
			want: []string{"a-before", "handler", "a-after"},
		},
		{
			name:  "empty",
			build: func(*[]string) []Middleware { return nil },
			want:  []string{"handler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order []string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			Chain(tt.build(&order)...)(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topics", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, order)
		})
	}
}
