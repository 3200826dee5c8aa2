package assistant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"GlowBeauty/internal/catalog"
	"GlowBeauty/pkg/kit"
)

// Image uploads arrive base64-encoded in the JSON body.
const maxBodyBytes = 8 << 20

// Fallback copy shown when the upstream call fails. AI failures never touch
// the stores and are never retried.
const (
	chatFallback     = "Oops! My beauty connection is a bit weak right now. Please try again in a moment! 🌸"
	imageFailMsg     = "Error generating image. Please check your prompt and try again."
	analysisFailMsg  = "Could not analyze image. Please try a clearer photo."
	imagePromptStyle = " professional product photography, studio lighting, 4k, minimalist beauty aesthetic, white background"
)

type Server struct {
	AI      *Client
	Catalog *catalog.Store
	Log     *zap.Logger
}

func (s *Server) ChatHandler() http.HandlerFunc          { return s.chat }
func (s *Server) GenerateImageHandler() http.HandlerFunc { return s.generateImage }
func (s *Server) SkinAnalysisHandler() http.HandlerFunc  { return s.skinAnalysis }

type chatReq struct {
	Messages []Message `json:"messages"`
}

type chatResp struct {
	Reply string `json:"reply"`
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req chatReq
	if err := decode(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if len(req.Messages) == 0 || strings.TrimSpace(req.Messages[len(req.Messages)-1].Text) == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "messages required", nil)
		return
	}

	reply, err := s.AI.Chat(r.Context(), req.Messages)
	if err != nil {
		s.Log.Warn("chat call failed", zap.Error(err))
		kit.WriteJSON(w, http.StatusOK, chatResp{Reply: chatFallback})
		return
	}

	kit.WriteJSON(w, http.StatusOK, chatResp{Reply: reply})
}

type imageReq struct {
	Prompt string `json:"prompt"`
}

func (s *Server) generateImage(w http.ResponseWriter, r *http.Request) {
	var req imageReq
	if err := decode(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "prompt required", nil)
		return
	}

	img, err := s.AI.GenerateImage(r.Context(), req.Prompt+imagePromptStyle)
	if err != nil {
		s.Log.Warn("image generation failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusBadGateway, imageFailMsg, nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"image":    img,
		"mimeType": "image/jpeg",
	})
}

type skinReq struct {
	Image string `json:"image"`
}

func (s *Server) skinAnalysis(w http.ResponseWriter, r *http.Request) {
	var req skinReq
	if err := decode(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "image required", nil)
		return
	}

	report, err := s.AI.AnalyzeSkin(r.Context(), req.Image)
	if errors.Is(err, ErrBadReport) {
		s.Log.Warn("skin analysis returned malformed report", zap.Error(err))
		kit.WriteError(w, r, http.StatusBadGateway, analysisFailMsg, nil)
		return
	}
	if err != nil {
		s.Log.Warn("skin analysis failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusBadGateway, analysisFailMsg, nil)
		return
	}

	recs := Recommend(s.Catalog.List(), report.RecommendedKeywords)
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"analysis":        report,
		"recommendations": recs,
	})
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
