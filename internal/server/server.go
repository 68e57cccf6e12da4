package server

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/store"
)

// WebFS holds the form page.
//
//go:embed web
var WebFS embed.FS

var pageTmpl = template.Must(template.ParseFS(WebFS, "web/index.html"))

// Server serves the roster form and its JSON API.
type Server struct {
	Loader   dagrooster.Loader
	Values   *store.ValuesStore
	Options  dagrooster.Options
	Username string
	Password string

	// Now returns the current time; the form defaults to its date.
	Now func() time.Time

	// mu keeps catalog loading, value edits and exports sequential.
	mu sync.Mutex
}

// New returns a Server; empty user and pass disable basic auth.
func New(loader dagrooster.Loader, values *store.ValuesStore, opts dagrooster.Options, user, pass string) *Server {
	return &Server{
		Loader:   loader,
		Values:   values,
		Options:  opts,
		Username: user,
		Password: pass,
		Now:      time.Now,
	}
}

// Handler returns the routes of the form and the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.basicAuth(s.handleIndex))
	mux.HandleFunc("GET /export", s.basicAuth(s.handleExport))
	mux.HandleFunc("GET /api/fields", s.basicAuth(s.handleFields))
	mux.HandleFunc("GET /api/values", s.basicAuth(s.handleGetValues))
	mux.HandleFunc("POST /api/values", s.basicAuth(s.handleSetValue))
	mux.HandleFunc("POST /api/clear", s.basicAuth(s.handleClear))

	return mux
}

// Start listens on addr and serves Handler.
func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// fields loads the template and extracts its field catalog. Every call reads
// the template again, so page loads follow edits to it.
func (s *Server) fields(ctx context.Context) (*models.FieldCatalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wb, err := s.Loader.Load(ctx)
	if err != nil {
		utils.Log.Errorf("loading template: %v", err)
		return nil, err
	}
	defer wb.Close()

	fc, err := dagrooster.Extract(wb, s.Options)
	if err != nil {
		utils.Log.Errorf("extracting fields: %v", err)
		return nil, err
	}
	utils.Log.Debugf("template loaded: %d fields on sheet %q", len(fc.Fields), fc.SheetName)
	return fc, nil
}

func (s *Server) today() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().Format(store.DateLayout)
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
