package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func fakeAI(t *testing.T, chatReply string, imageB64 string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, ":generateContent"):
			var req genRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if len(req.Contents) == 0 {
				t.Errorf("empty contents")
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"candidates": []map[string]any{
					{"content": map[string]any{"role": "model", "parts": []map[string]any{{"text": chatReply}}}},
				},
			})
		case strings.Contains(r.URL.Path, ":predict"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"predictions": []map[string]any{{"bytesBase64Encoded": imageB64}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestClient_Chat(t *testing.T) {
	ts := fakeAI(t, "Try a gentle low pH cleanser ✨", "")
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL, "test-key")
	reply, err := c.Chat(context.Background(), []Message{{Role: "user", Text: "my skin feels tight"}})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if !strings.Contains(reply, "cleanser") {
		t.Fatalf("reply=%q", reply)
	}
}

func TestClient_GenerateImage(t *testing.T) {
	ts := fakeAI(t, "", "aW1hZ2VieXRlcw==")
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL, "test-key")
	img, err := c.GenerateImage(context.Background(), "rose serum bottle")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if img != "aW1hZ2VieXRlcw==" {
		t.Fatalf("img=%q", img)
	}
}

func TestClient_AnalyzeSkinParsesFencedReport(t *testing.T) {
	fenced := "```json\n" + goodReport + "\n```"
	ts := fakeAI(t, fenced, "")
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL, "test-key")
	report, err := c.AnalyzeSkin(context.Background(), "ZmFjZQ==")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.SkinType != "Combination" || len(report.RecommendedKeywords) != 2 {
		t.Fatalf("report=%+v", report)
	}
}

func TestClient_AnalyzeSkinRejectsProseReply(t *testing.T) {
	ts := fakeAI(t, "Sorry, I can't help with that.", "")
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL, "test-key")
	if _, err := c.AnalyzeSkin(context.Background(), "ZmFjZQ=="); !errors.Is(err, ErrBadReport) {
		t.Fatalf("err=%v", err)
	}
}

func TestClient_UpstreamErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL, "test-key")
	if _, err := c.Chat(context.Background(), []Message{{Role: "user", Text: "hi"}}); !errors.Is(err, ErrBadStatus) {
		t.Fatalf("err=%v", err)
	}
}

func TestClient_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "test-key")
	if _, err := c.Chat(context.Background(), []Message{{Role: "user", Text: "hi"}}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err=%v", err)
	}
}

func TestClient_EmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL, "test-key")
	if _, err := c.Chat(context.Background(), []Message{{Role: "user", Text: "hi"}}); !errors.Is(err, ErrEmptyReply) {
		t.Fatalf("err=%v", err)
	}
}
