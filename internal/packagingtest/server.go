// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package packagingtest runs an in-process fake of the shell packaging REST
// API for tests. It keeps installed shells in memory, records every request
// it receives and lets a test force a status for any method and path.
package packagingtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-shell-packager/internal/logger"
	"github.com/MKhiriev/go-shell-packager/internal/utils"
	"github.com/MKhiriev/go-shell-packager/models"
)

// Credentials and token accepted by a new Server.
const (
	Username = "USER"
	Password = "PASS"
	Domain   = "Global"
	Token    = "TOKEN"
)

// Request is a recorded request.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	ContentType   string

	// FileField, FileName and FileContent describe the first multipart file
	// part, if any.
	FileField   string
	FileName    string
	FileContent []byte

	// Body is the raw body of non-multipart requests.
	Body []byte
}

type override struct {
	status int
	body   string
}

// Server is a fake packaging API listening on a local httptest server.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []Request
	logins    int
	shells    map[string][]byte
	standards []models.Standard
	overrides map[string]override

	logger *logger.Logger

	// LoginBody is written on a successful login. Defaults to the
	// JSON-quoted Token.
	LoginBody string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger makes the server log one line per request to l.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer starts a Server that is closed when t ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		shells:    make(map[string][]byte),
		standards: make([]models.Standard, 0),
		overrides: make(map[string]override),
		logger:    logger.Nop(),
		LoginBody: strconv.Quote(Token),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.withRequestID)
	r.Use(s.withLogging)
	r.Use(s.record)
	r.Use(s.forced)

	r.Route("/API", func(r chi.Router) {
		r.Put("/Auth/Login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.auth)

			r.Post("/Shells", s.addShell)
			r.Put("/Shells/{name}", s.updateShell)
			r.Get("/Shells/{name}", s.getShell)
			r.Delete("/Shells/{name}", s.deleteShell)

			r.Get("/Standards", s.getStandards)

			r.Post("/Package/ImportPackage", s.importPackage)
			r.Post("/Package/ExportPackage", s.exportPackage)
		})
	})

	return r
}

// Host returns the host part of the server address.
func (s *Server) Host() string {
	u, _ := url.Parse(s.URL)
	return u.Hostname()
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	u, _ := url.Parse(s.URL)
	port, _ := strconv.Atoi(u.Port())
	return port
}

// Respond forces every later request matching method and path (exact, after
// unescaping) to be answered with status and body.
func (s *Server) Respond(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = override{status: status, body: body}
}

// InstallShell preloads a shell as if it had been added.
func (s *Server) InstallShell(name string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shells[name] = content
}

// ShellContent returns the archive stored for name.
func (s *Server) ShellContent(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.shells[name]
	return content, ok
}

// SetStandards replaces the list served by GET /API/Standards.
func (s *Server) SetStandards(standards ...models.Standard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.standards = append(make([]models.Standard, 0, len(standards)), standards...)
}

// Requests returns a copy of the recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request, or false if none arrived.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Logins returns the number of login calls received.
func (s *Server) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logins
}

// ── middleware ───────────────────────────────────────────────────────────────

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		rec := Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			ContentType:   r.Header.Get("Content-Type"),
		}
		if !readFilePart(&rec, body) {
			rec.Body = body
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		if r.Method == http.MethodPut && r.URL.Path == "/API/Auth/Login" {
			s.logins++
		}
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) forced(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		o, ok := s.overrides[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		_ = utils.WriteRaw(w, o.status, "text/plain; charset=utf-8", []byte(o.body))
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Basic "+Token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// readFilePart fills the file fields of rec from a multipart body.
func readFilePart(rec *Request, body []byte) bool {
	mediaType, params, err := mime.ParseMediaType(rec.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return false
	}

	mr := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		part, err := mr.NextPart()
		if err != nil {
			return true
		}
		if part.FileName() == "" {
			continue
		}
		rec.FileField = part.FormName()
		rec.FileName = part.FileName()
		rec.FileContent, _ = io.ReadAll(part)
		return true
	}
}

// ── handlers ─────────────────────────────────────────────────────────────────

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed login request", http.StatusBadRequest)
		return
	}
	creds := models.Credentials{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
		Domain:   r.PostForm.Get("domain"),
	}

	if creds.Username != Username || creds.Password != Password || creds.Domain != Domain {
		_ = utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"Message": "Login failed"})
		return
	}

	s.mu.Lock()
	body := s.LoginBody
	s.mu.Unlock()
	_ = utils.WriteRaw(w, http.StatusOK, "application/json", []byte(body))
}

func (s *Server) addShell(w http.ResponseWriter, r *http.Request) {
	name, content, ok := uploadedArchive(r)
	if !ok {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, exists := s.shells[name]
	if !exists {
		s.shells[name] = content
	}
	s.mu.Unlock()

	if exists {
		http.Error(w, fmt.Sprintf("shell %s already exists", name), http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) updateShell(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	_, content, ok := uploadedArchive(r)
	if !ok {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, exists := s.shells[name]
	if exists {
		s.shells[name] = content
	}
	s.mu.Unlock()

	if !exists {
		http.Error(w, fmt.Sprintf("shell %s not found", name), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) getShell(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	content, exists := s.shells[name]
	s.mu.Unlock()

	if !exists {
		http.Error(w, fmt.Sprintf("shell %s not found", name), http.StatusBadRequest)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, map[string]any{
		"Name": name,
		"Size": len(content),
	})
}

func (s *Server) deleteShell(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	_, exists := s.shells[name]
	delete(s.shells, name)
	s.mu.Unlock()

	if !exists {
		http.Error(w, fmt.Sprintf("shell %s not found", name), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) getStandards(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	standards := append([]models.Standard(nil), s.standards...)
	s.mu.Unlock()

	if standards == nil {
		standards = make([]models.Standard, 0)
	}
	_ = utils.WriteJSON(w, http.StatusOK, standards)
}

func (s *Server) importPackage(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := uploadedArchive(r); !ok {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"Success": true})
}

func (s *Server) exportPackage(w http.ResponseWriter, r *http.Request) {
	var req models.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.TopologyNames) == 0 {
		http.Error(w, "TopologyNames is required", http.StatusBadRequest)
		return
	}
	_ = utils.WriteRaw(w, http.StatusOK, "application/zip", ExportedArchive(req.TopologyNames))
}

// ExportedArchive is the body the fake returns for an export of topologies.
func ExportedArchive(topologies []string) []byte {
	return []byte("PK\x03\x04" + strings.Join(topologies, ","))
}

// uploadedArchive returns the shell name derived from the uploaded file name
// and the file content.
func uploadedArchive(r *http.Request) (string, []byte, bool) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", nil, false
	}

	base := filepath.Base(header.Filename)
	return strings.TrimSuffix(base, filepath.Ext(base)), content, true
}
