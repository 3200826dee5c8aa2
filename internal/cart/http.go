package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GlowBeauty/internal/auth"
	"GlowBeauty/internal/catalog"
	"GlowBeauty/pkg/kit"
)

const maxBodyBytes = 64 << 10

// Server assumes auth.RequireUser has already run on every route.
type Server struct {
	Store   *Store
	Catalog *catalog.Store
	Log     *zap.Logger
}

func (s *Server) ViewHandler() http.HandlerFunc        { return s.view }
func (s *Server) AddItemHandler() http.HandlerFunc     { return s.addItem }
func (s *Server) SetQuantityHandler() http.HandlerFunc { return s.setQuantity }
func (s *Server) RemoveItemHandler() http.HandlerFunc  { return s.removeItem }
func (s *Server) ClearHandler() http.HandlerFunc       { return s.clear }
func (s *Server) CheckoutHandler() http.HandlerFunc    { return s.checkout }

func (s *Server) view(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	lines := s.Store.Lines(u.ID)
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"lines":    lines,
		"count":    len(lines),
		"subtotal": subtotal(lines),
	})
}

type addItemReq struct {
	ProductID int64 `json:"productId"`
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req addItemReq
	if err := decode(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	p, found := s.Catalog.GetByID(req.ProductID)
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "unknown product", map[string]any{"id": req.ProductID})
		return
	}

	if err := s.Store.Add(r.Context(), u.ID, p); err != nil {
		s.Log.Error("persist cart failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.view(w, r)
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) setQuantity(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	var req setQuantityReq
	if err := decode(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	if err := s.Store.SetQuantity(r.Context(), u.ID, id, req.Quantity); err != nil {
		s.Log.Error("persist cart failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.view(w, r)
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	if err := s.Store.Remove(r.Context(), u.ID, id); err != nil {
		s.Log.Error("persist cart failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.view(w, r)
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	if err := s.Store.Clear(r.Context(), u.ID); err != nil {
		s.Log.Error("persist cart failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	o, err := s.Store.Checkout(r.Context(), u.ID)
	if errors.Is(err, ErrEmptyCart) {
		kit.WriteError(w, r, http.StatusBadRequest, "cart is empty", nil)
		return
	}
	if err != nil {
		s.Log.Error("checkout failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, o)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
