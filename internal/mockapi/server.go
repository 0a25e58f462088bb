// Package mockapi is an in-process stand-in for the career outcomes backend.
// Tests mount it behind httptest; the hidden `mock-backend` command serves it
// for offline demos.
package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Reply is a canned response for one route.
type Reply struct {
	Status int
	Body   string
}

// Call records one request the server received.
type Call struct {
	Method    string
	Path      string
	Query     url.Values
	Body      string
	RequestID string
}

// Server routes the six backend endpoints to canned replies.
type Server struct {
	router chi.Router

	mu      sync.Mutex
	replies map[string]Reply
	calls   []Call
}

// New returns a Server whose root answers 200 and whose flow endpoints
// answer 503 until a reply is configured.
func New() *Server {
	s := &Server{replies: map[string]Reply{}}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Get("/", s.serve)
	r.Post("/analyze", s.serve)
	r.Get("/insights", s.serve)
	r.Get("/support-services", s.serve)
	r.Post("/roi", s.serve)
	r.Post("/compare", s.serve)
	s.router = r
	s.Reply(http.MethodGet, "/", http.StatusOK, `{"status":"ok"}`)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Reply configures the raw response for method and path.
func (s *Server) Reply(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[routeKey(method, path)] = Reply{Status: status, Body: body}
}

// ReplyJSON configures a 200 response carrying v encoded as JSON.
func (s *Server) ReplyJSON(method, path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.Reply(method, path, http.StatusOK, string(data))
	return nil
}

// Calls returns every request received so far, in arrival order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Hits counts requests to path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, call := range s.calls {
		if call.Path == path {
			count++
		}
	}
	return count
}

// LastCall returns the most recent request to path.
func (s *Server) LastCall(path string) (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.calls) - 1; i >= 0; i-- {
		if s.calls[i].Path == path {
			return s.calls[i], true
		}
	}
	return Call{}, false
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(io.LimitReader(r.Body, 1<<20))
		}
		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.Query(),
			Body:      string(body),
			RequestID: r.Header.Get("X-Request-ID"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	reply, ok := s.replies[routeKey(r.Method, r.URL.Path)]
	s.mu.Unlock()
	if !ok {
		http.Error(w, `{"detail":"no reply configured"}`, http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}

func routeKey(method, path string) string {
	return method + " " + path
}
