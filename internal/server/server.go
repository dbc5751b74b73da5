// Package server exposes a session over HTTP: the scene document, a rendered
// frame and the command prompt.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/example/vecdraw/internal/scene"
	"github.com/example/vecdraw/internal/session"
	"github.com/example/vecdraw/internal/store"
)

// maxCommandBytes bounds the body of POST /command.
const maxCommandBytes = 4 << 10

// Server serves one session.
type Server struct {
	session *session.Session
	router  *mux.Router
}

// New builds the routes for s.
func New(s *session.Session) *Server {
	srv := &Server{session: s, router: mux.NewRouter()}
	r := srv.router
	r.Use(recovery)
	r.Use(logger)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/scene", srv.scene).Methods("GET")
	r.HandleFunc("/scene", srv.replace).Methods("PUT")
	r.HandleFunc("/render.png", srv.render).Methods("GET")
	r.HandleFunc("/command", srv.command).Methods("POST")
	r.HandleFunc("/select/next", srv.selectNext).Methods("POST")
	r.HandleFunc("/objects", srv.objects).Methods("GET")
	return srv
}

// ServeHTTP implements http.Handler.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (srv *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("server shutdown", "error", err)
		}
	}()
	slog.Info("server starting", "addr", addr)
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (srv *Server) scene(w http.ResponseWriter, r *http.Request) {
	f := store.JSON
	contentType := "application/json"
	if r.URL.Query().Get("format") == "yaml" {
		f = store.YAML
		contentType = "application/yaml"
	}
	b, err := srv.session.Snapshot(f)
	if err != nil {
		slog.Error("encode scene failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(b)
}

// replace swaps in a scene document from the request body. Malformed
// documents leave the session untouched.
func (srv *Server) replace(w http.ResponseWriter, r *http.Request) {
	sc, err := store.Decode(r.Body, store.JSON)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	srv.session.Replace(sc)
	writeJSON(w, http.StatusOK, map[string]string{"status": "replaced"})
}

func (srv *Server) render(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, srv.session.Render()); err != nil {
		slog.Error("encode frame failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

type commandResponse struct {
	Text    string `json:"text"`
	Spawned string `json:"spawned,omitempty"`
}

// command replaces the prompt text with the body and commits it.
func (srv *Server) command(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCommandBytes+1))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(body) > maxCommandBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "command too long"})
		return
	}
	o, text := srv.session.Execute(strings.TrimRight(string(body), "\r\n"))
	resp := commandResponse{Text: text}
	if o != nil {
		resp.Spawned = o.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (srv *Server) selectNext(w http.ResponseWriter, r *http.Request) {
	var (
		moved    bool
		selected int
	)
	srv.session.Edit(func(sc *scene.Scene) error {
		moved = sc.SelectNext()
		selected = sc.Selected
		return nil
	})
	writeJSON(w, http.StatusOK, map[string]any{"selected": selected, "moved": moved})
}

type objectSummary struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Bounds [4]int `json:"bounds"`
}

func (srv *Server) objects(w http.ResponseWriter, r *http.Request) {
	var out []objectSummary
	srv.session.View(func(sc *scene.Scene, _ *scene.Prompt) {
		out = make([]objectSummary, 0, len(sc.Objects))
		for _, o := range sc.Objects {
			b := o.Points().Bounds()
			out = append(out, objectSummary{
				ID:     o.ID,
				Kind:   o.Shape.Kind().String(),
				Bounds: [4]int{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y},
			})
		}
	})
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response", "error", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
	})
}

func recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				slog.Error("handler panic", "path", r.URL.Path, "panic", fmt.Sprint(v))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
