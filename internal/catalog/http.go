package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GlowBeauty/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store *Store
	Log   *zap.Logger
}

func (s *Server) ListHandler() http.HandlerFunc       { return s.list }
func (s *Server) GetHandler() http.HandlerFunc        { return s.get }
func (s *Server) SuggestHandler() http.HandlerFunc    { return s.suggest }
func (s *Server) CategoriesHandler() http.HandlerFunc { return s.categories }
func (s *Server) CreateHandler() http.HandlerFunc     { return s.create }
func (s *Server) DeleteHandler() http.HandlerFunc     { return s.remove }

// productView decorates a product with the derived sale badge.
type productView struct {
	Product
	DiscountPercent int `json:"discountPercent,omitempty"`
}

func viewOf(p Product) productView {
	return productView{Product: p, DiscountPercent: p.DiscountPercent()}
}

func viewsOf(products []Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, viewOf(p))
	}
	return out
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := Query{
		Term:       r.URL.Query().Get("q"),
		Categories: r.URL.Query()["category"],
		Tag:        Tag(r.URL.Query().Get("type")),
		Sort:       ParseSort(r.URL.Query().Get("sort")),
	}

	results := Search(s.Store.List(), q)
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"products": viewsOf(results),
		"total":    len(results),
	})
}

func (s *Server) suggest(w http.ResponseWriter, r *http.Request) {
	matches := Suggest(s.Store.List(), r.URL.Query().Get("q"))
	kit.WriteJSON(w, http.StatusOK, map[string]any{"suggestions": viewsOf(matches)})
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]any{"categories": Categories})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	p, ok := s.Store.GetByID(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, viewOf(p))
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var in Input
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	p, err := s.Store.Add(r.Context(), in)
	if err != nil {
		s.Log.Error("persist product failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, viewOf(p))
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	// An absent id still gets a 204.
	if err := s.Store.Remove(r.Context(), id); err != nil {
		s.Log.Error("persist delete failed", zap.Error(err), zap.Int64("product_id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func productID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
