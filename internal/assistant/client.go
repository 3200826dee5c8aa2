// Package assistant talks to the external generative AI service: chat
// replies, product image generation and skin analysis. Calls are single-shot
// with no retry or streaming; callers degrade to canned copy on failure.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	chatModel  = "gemini-2.5-flash"
	imageModel = "imagen-3.0-generate-001"
)

var (
	ErrUnavailable = errors.New("ai service unavailable")
	ErrBadStatus   = errors.New("ai service bad status")
	ErrEmptyReply  = errors.New("ai service empty reply")
)

type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type Client struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

const chatSystemInstruction = "You are a friendly, professional, and knowledgeable beauty advisor for 'GlowBeauty', a premium cosmetics store. Your tone is warm, encouraging, and helpful (use emojis like ✨, 💄, 🌸). You recommend skincare and makeup products based on the user's needs. You are concise but helpful. Never mention prices unless asked. Focus on ingredients and benefits. If asked about technical issues, apologize and guide them to customer support."

// wire types for the generateContent endpoint

type genPart struct {
	Text       string         `json:"text,omitempty"`
	InlineData *genInlineData `json:"inline_data,omitempty"`
}

type genInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type genContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []genPart `json:"parts"`
}

type genRequest struct {
	SystemInstruction *genContent  `json:"system_instruction,omitempty"`
	Contents          []genContent `json:"contents"`
}

type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

// Chat sends the running conversation and returns the model's text reply.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	req := genRequest{
		SystemInstruction: &genContent{Parts: []genPart{{Text: chatSystemInstruction}}},
	}
	for _, m := range messages {
		role := m.Role
		if role != "model" {
			role = "user"
		}
		req.Contents = append(req.Contents, genContent{Role: role, Parts: []genPart{{Text: m.Text}}})
	}

	var resp genResponse
	if err := c.post(ctx, c.generatePath(chatModel, "generateContent"), req, &resp); err != nil {
		return "", err
	}
	return firstText(resp)
}

const skinPrompt = `Analyze this face image for skincare purposes.
Identify: 1. Skin Type (Oily, Dry, Combination, Normal) 2. Key Concerns (Acne, Wrinkles, Dark Spots, Pores, etc.).
Provide a JSON response WITHOUT markdown formatting like this:
{
  "skinType": "Type",
  "concerns": ["Concern1", "Concern2"],
  "summary": "A brief, friendly analysis of the skin condition in 2 sentences.",
  "recommendedKeywords": ["keyword1", "keyword2"]
}`

// AnalyzeSkin sends the image plus the analysis prompt and parses the reply
// through the strict report schema.
func (c *Client) AnalyzeSkin(ctx context.Context, imageB64 string) (SkinReport, error) {
	req := genRequest{
		Contents: []genContent{{
			Role: "user",
			Parts: []genPart{
				{Text: skinPrompt},
				{InlineData: &genInlineData{MimeType: "image/jpeg", Data: imageB64}},
			},
		}},
	}

	var resp genResponse
	if err := c.post(ctx, c.generatePath(chatModel, "generateContent"), req, &resp); err != nil {
		return SkinReport{}, err
	}

	text, err := firstText(resp)
	if err != nil {
		return SkinReport{}, err
	}
	return ParseSkinReport(text)
}

// wire types for the image prediction endpoint

type imageRequest struct {
	Instances  []imageInstance `json:"instances"`
	Parameters imageParams     `json:"parameters"`
}

type imageInstance struct {
	Prompt string `json:"prompt"`
}

type imageParams struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio"`
	OutputMimeType string `json:"outputMimeType"`
}

type imageResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

// GenerateImage returns the base64-encoded JPEG for the prompt, fixed at a
// 1:1 aspect.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	req := imageRequest{
		Instances: []imageInstance{{Prompt: prompt}},
		Parameters: imageParams{
			SampleCount:    1,
			AspectRatio:    "1:1",
			OutputMimeType: "image/jpeg",
		},
	}

	var resp imageResponse
	if err := c.post(ctx, c.generatePath(imageModel, "predict"), req, &resp); err != nil {
		return "", err
	}
	if len(resp.Predictions) == 0 || resp.Predictions[0].BytesBase64Encoded == "" {
		return "", ErrEmptyReply
	}
	return resp.Predictions[0].BytesBase64Encoded, nil
}

func (c *Client) generatePath(model, verb string) string {
	return fmt.Sprintf("%s/v1beta/models/%s:%s?key=%s", c.BaseURL, model, verb, c.APIKey)
}

func (c *Client) post(ctx context.Context, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrBadStatus, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func firstText(resp genResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyReply
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", ErrEmptyReply
}
