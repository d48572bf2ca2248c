package handler

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/efreitasn/auctionhouse/internal/notify"
	"github.com/efreitasn/auctionhouse/internal/service"
)

// NewRouter creates a chi router with all routes registered, request logging,
// and Content-Type validation middleware.
func NewRouter(
	directorySvc *service.DirectoryService,
	catalogueSvc *service.CatalogueService,
	auctionSvc *service.AuctionService,
	hub *notify.Hub,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	r.Use(requestLogging(logger))
	r.Use(contentTypeJSON)

	directoryH := NewDirectoryHandler(directorySvc)
	lotH := NewLotHandler(catalogueSvc)
	auctionH := NewAuctionHandler(auctionSvc)
	notificationH := NewNotificationHandler(hub, logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/buyers", directoryH.RegisterBuyer)
	r.Post("/sellers", directoryH.RegisterSeller)

	r.Route("/lots", func(r chi.Router) {
		r.Post("/", lotH.AddLot)
		r.Get("/", lotH.List)
		r.Get("/{lot_number}", lotH.Get)
		r.Post("/{lot_number}/interest", lotH.NoteInterest)
	})

	r.Route("/auctions", func(r chi.Router) {
		r.Post("/", auctionH.Open)
		r.Get("/{lot_number}", auctionH.Get)
		r.Post("/{lot_number}/bids", auctionH.Bid)
		r.Post("/{lot_number}/close", auctionH.Close)
	})

	r.Get("/notifications/ws", notificationH.Stream)

	return r
}

// requestLogging returns middleware that logs each request's method, path,
// status code, and duration using slog.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrader take over the connection.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// contentTypeJSON is middleware that rejects POST, PUT, and PATCH requests
// whose Content-Type is not application/json.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct == "" || !strings.HasPrefix(ct, "application/json") {
				WriteError(w, http.StatusBadRequest, "invalid_request",
					"Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
