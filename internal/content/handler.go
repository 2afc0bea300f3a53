package content

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"xcelliti-backend/internal/cache"
	"xcelliti-backend/internal/httpx"
	"xcelliti-backend/internal/middleware"
	"xcelliti-backend/internal/transport"
	"xcelliti-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

const defaultPageSize = 10

// ResourceHandler is the route surface every entity kind exposes; the router
// wires one instantiation per kind.
type ResourceHandler interface {
	Name() string
	PublicList(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	AdminCreate(w http.ResponseWriter, r *http.Request)
	AdminUpdate(w http.ResponseWriter, r *http.Request)
	AdminDelete(w http.ResponseWriter, r *http.Request)
}

type Handler[Req any, Ent any] struct {
	res      *Resource[Req, Ent]
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler[Req any, Ent any](
	res *Resource[Req, Ent],
	val *validation.Validator,
	log *slog.Logger,
	c cache.Cache,
	cacheTTL time.Duration,
) *Handler[Req, Ent] {
	return &Handler[Req, Ent]{
		res:      res,
		val:      val,
		log:      log,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (h *Handler[Req, Ent]) Name() string {
	return h.res.Name
}

func (h *Handler[Req, Ent]) cacheKey() string {
	return "content:" + h.res.Name
}

func (h *Handler[Req, Ent]) PublicList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	page, limit, _, err := httpx.ParsePageLimit(r.URL.Query(), defaultPageSize, 100)
	if err != nil {
		log.Warn(h.res.Name+" list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	// Only the default first page is cached; it is what the public site requests.
	cacheable := h.cache != nil && page == 1 && limit == defaultPageSize
	if cacheable {
		if cached, ok, err := h.cache.Get(r.Context(), h.cacheKey()); err == nil && ok {
			log.Info(h.res.Name + " list: cache hit")
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, total, err := h.res.List(ctx, page, limit)
	if err != nil {
		log.Error(h.res.Name+" list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := listResponse[Ent]{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}

	if cacheable {
		if payload, err := json.Marshal(response); err == nil {
			_ = h.cache.Set(r.Context(), h.cacheKey(), payload, h.cacheTTL)
		}
	}

	log.Info(h.res.Name+" list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler[Req, Ent]) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	page, limit, _, err := httpx.ParsePageLimit(r.URL.Query(), defaultPageSize, 100)
	if err != nil {
		log.Warn("admin "+h.res.Name+" list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.res.List(ctx, page, limit)
	if err != nil {
		log.Error("admin "+h.res.Name+" list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin "+h.res.Name+" list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, listResponse[Ent]{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (h *Handler[Req, Ent]) AdminCreate(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, "admin "+h.res.Name+" create")
}

// PublicCreate serves the one unauthenticated mutation in the system, the
// contact form.
func (h *Handler[Req, Ent]) PublicCreate(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.res.Name+" create")
}

func (h *Handler[Req, Ent]) create(w http.ResponseWriter, r *http.Request, op string) {
	log := h.logWithRequest(r)

	var req Req
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn(op + ": invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn(op + ": validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.res.Create(ctx, req)
	if err != nil {
		log.Error(op+": database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info(op + ": ok")
	transport.WriteJSON(w, http.StatusCreated, itemResponse[Ent]{Item: item})
}

func (h *Handler[Req, Ent]) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin " + h.res.Name + " update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req Req
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin " + h.res.Name + " update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin " + h.res.Name + " update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.res.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin "+h.res.Name+" update: not found", slog.String("id", id))
			transport.WriteError(w, http.StatusNotFound, h.res.Kind+" not found", nil)
			return
		}
		log.Error("admin "+h.res.Name+" update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("admin "+h.res.Name+" update: ok", slog.String("id", id))
	transport.WriteJSON(w, http.StatusOK, itemResponse[Ent]{Item: item})
}

func (h *Handler[Req, Ent]) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin " + h.res.Name + " delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.res.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin "+h.res.Name+" delete: not found", slog.String("id", id))
			transport.WriteError(w, http.StatusNotFound, h.res.Kind+" not found", nil)
			return
		}
		log.Error("admin "+h.res.Name+" delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("admin "+h.res.Name+" delete: ok", slog.String("id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": h.res.Kind + " deleted"})
}

func (h *Handler[Req, Ent]) invalidate(ctx context.Context) {
	if h.cache != nil {
		_ = h.cache.Delete(ctx, h.cacheKey())
	}
}

func (h *Handler[Req, Ent]) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}

type listResponse[Ent any] struct {
	Items []Ent `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

type itemResponse[Ent any] struct {
	Item Ent `json:"item"`
}

func writeCachedJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
