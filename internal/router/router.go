package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/salgadostudio/booking-site/internal/auth"
	"github.com/salgadostudio/booking-site/internal/handler"
	mw "github.com/salgadostudio/booking-site/internal/middleware"
)

func New(
	sessionSecret string,
	sessions *auth.SessionStore,
	authH *handler.AuthHandler,
	bookingH *handler.BookingHandler,
	adminH *handler.AdminHandler,
	publicDir string,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	// Public routes
	r.Post("/api/booking", bookingH.Submit)
	r.Post("/admin/login", authH.Login)
	r.Post("/admin/logout", authH.Logout)

	// Protected admin API
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(sessionSecret, sessions))

		r.Get("/api/admin/submissions", adminH.List)
		r.Patch("/api/admin/submissions/{id}/looked-at", adminH.SetLookedAt)
		r.Delete("/api/admin/submissions/{id}", adminH.Delete)
	})

	// Static front-end pages; their rendering lives entirely client side.
	r.Get("/", servePage(publicDir, "index.html"))
	r.Get("/booking", servePage(publicDir, "booking.html"))
	r.Get("/admin", servePage(publicDir, "admin.html"))
	r.Handle("/*", staticFiles(publicDir))

	return r
}

func servePage(publicDir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(publicDir, name))
	}
}

// staticFiles serves public assets, answering 404 itself so missing paths
// don't fall through to the file server's directory listing.
func staticFiles(publicDir string) http.Handler {
	fs := http.FileServer(http.Dir(publicDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := os.Stat(filepath.Join(publicDir, filepath.Clean(r.URL.Path)))
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}
