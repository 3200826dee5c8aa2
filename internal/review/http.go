package review

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GlowBeauty/pkg/kit"
)

const maxBodyBytes = 64 << 10

type Server struct {
	Store *Store
	Log   *zap.Logger
}

func (s *Server) ListHandler() http.HandlerFunc   { return s.list }
func (s *Server) CreateHandler() http.HandlerFunc { return s.create }

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	reviews := s.Store.ListByProduct(id)
	if reviews == nil {
		reviews = []Comment{}
	}
	kit.WriteJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

type createReq struct {
	UserName string `json:"userName"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req createReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.UserName = strings.TrimSpace(req.UserName)
	req.Text = strings.TrimSpace(req.Text)
	if req.UserName == "" || req.Text == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "userName/text required", nil)
		return
	}

	c, err := s.Store.Add(r.Context(), id, req.Text, req.Rating, req.UserName)
	if err != nil {
		s.Log.Error("persist review failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, c)
}
