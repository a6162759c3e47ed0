package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/NewsContentAPI/internal/domain"
	"github.com/gorilla/mux"
)

type handlers struct {
	content   ContentQueries
	assets    AssetOpener
	readiness ReadinessProbe
}

type featuredResponse struct {
	Status string       `json:"status"`
	Data   featuredData `json:"data"`
}

type featuredData struct {
	Articles []domain.FeaturedArticle `json:"articles"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type readinessResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *handlers) listFeaturedArticles(w http.ResponseWriter, r *http.Request) {
	articles := h.content.ListFeaturedArticles(r.Context(), baseURL(r))
	writeJSON(w, http.StatusOK, featuredResponse{
		Status: "success",
		Data:   featuredData{Articles: articles},
	})
}

func (h *handlers) listNews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.ListNews(r.Context()))
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Warn("Failed to write health response", "error", err)
	}
}

func (h *handlers) getArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	article, err := h.content.GetArticle(r.Context(), baseURL(r), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (h *handlers) getPoll(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	poll, err := h.content.GetPoll(r.Context(), baseURL(r), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, poll)
	case errors.Is(err, domain.ErrDanglingReference):
		slog.Error("Poll join failed", "poll_id", id, "error", err, "request_id", requestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "Poll article not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Poll not found")
	default:
		internalError(w, r, err)
	}
}

// getDiscussion always answers 200; unknown ids get the empty thread.
func (h *handlers) getDiscussion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		// digits only, so this is an id too large to exist
		writeJSON(w, http.StatusOK, domain.EmptyDiscussion())
		return
	}
	writeJSON(w, http.StatusOK, h.content.GetDiscussion(r.Context(), baseURL(r), id))
}

func (h *handlers) serveAsset(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]
	f, info, err := h.assets.Open(name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "File not found")
			return
		}
		internalError(w, r, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close asset", "filename", name, "error", err)
		}
	}()

	if rs, ok := f.(io.ReadSeeker); ok {
		http.ServeContent(w, r, info.Name(), info.ModTime(), rs)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		slog.Warn("Failed to stream asset", "filename", name, "error", err)
	}
}

func (h *handlers) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.readiness.Check(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, readinessResponse{Status: "not_ready", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, readinessResponse{Status: "ready"})
}

// baseURL is scheme://host/ of the inbound request.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		status = http.StatusInternalServerError
		payload = []byte(`{"error":"Internal server error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(payload, '\n')); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("Request failed", "path", r.URL.Path, "error", err, "request_id", requestIDFrom(r.Context()))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
