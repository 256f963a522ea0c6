package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gamehub/internal/apperr"
	"gamehub/internal/catalog"
	"gamehub/internal/redisx"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type GamesHandler struct {
	Repo   catalog.Repository
	Images catalog.ImageStore
	Cache  *redis.Client // nil disables the list cache
}

func (h *GamesHandler) Register(r chi.Router, auth *Auth) {
	r.Get("/api/games", h.list)
	r.Get("/api/games/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Post("/api/games", h.create)
		r.Put("/api/games/{id}", h.update)
		r.Delete("/api/games/{id}", h.remove)
	})
}

func (h *GamesHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if h.Cache != nil {
		if s, err := h.Cache.Get(ctx, redisx.KeyGamesList).Result(); err == nil && s != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(s))
			return
		}
	}

	games, err := h.Repo.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if games == nil {
		games = []catalog.Game{}
	}
	if h.Cache != nil {
		if b, err := json.Marshal(games); err == nil {
			_ = h.Cache.Set(ctx, redisx.KeyGamesList, b, redisx.TTLGamesCache).Err()
		}
	}
	writeJSON(w, http.StatusOK, games)
}

func (h *GamesHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	g, err := h.Repo.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *GamesHandler) create(w http.ResponseWriter, r *http.Request) {
	in, err := h.parseGameForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if in.Name == nil || in.Price == nil {
		writeErrorMsg(w, http.StatusBadRequest, "Name and price are required")
		return
	}

	g := catalog.Game{Name: *in.Name, Price: *in.Price}
	if in.Category != nil {
		g.Category = *in.Category
	}
	if in.Image != nil {
		g.Image = *in.Image
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	created, err := h.Repo.Create(ctx, g)
	if err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(ctx)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "game": created})
}

func (h *GamesHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}
	in, err := h.parseGameForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	g, err := h.Repo.Update(ctx, id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(ctx)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "game": g})
}

func (h *GamesHandler) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Repo.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(ctx)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Game deleted successfully"})
}

// parseGameForm accepts either JSON or a multipart form with an optional
// image file. Fields absent from the request stay nil.
func (h *GamesHandler) parseGameForm(r *http.Request) (catalog.Update, error) {
	var upd catalog.Update

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(catalog.MaxImageSize); err != nil {
			return upd, apperr.Validation("invalid multipart form")
		}
		if v := r.FormValue("name"); v != "" {
			upd.Name = &v
		}
		if v := r.FormValue("price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return upd, apperr.Validation("Price must be a valid number")
			}
			upd.Price = &p
		}
		if v := r.FormValue("category"); v != "" {
			upd.Category = &v
		}
		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			if h.Images == nil {
				return upd, apperr.Validation("image uploads are disabled")
			}
			ref, err := h.Images.Save(header.Filename, file)
			if err != nil {
				return upd, err
			}
			upd.Image = &ref
		}
	} else {
		var body struct {
			Name     *string  `json:"name"`
			Price    *float64 `json:"price"`
			Category *string  `json:"category"`
			Image    *string  `json:"image"`
		}
		if err := decodeStrict(r, &body); err != nil {
			return upd, apperr.Validation("invalid json")
		}
		upd = catalog.Update(body)
	}

	if upd.Price != nil && *upd.Price < 0 {
		return upd, apperr.Validation("Price must be a valid number")
	}
	return upd, nil
}

func (h *GamesHandler) invalidate(ctx context.Context) {
	if h.Cache != nil {
		_ = h.Cache.Del(ctx, redisx.KeyGamesList).Err()
	}
}

func gameID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid game id")
		return 0, false
	}
	return id, true
}
