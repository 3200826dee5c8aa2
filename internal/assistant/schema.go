package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SkinReport is the structured result of a skin analysis. The model is told
// to answer with bare JSON; ParseSkinReport still strips markdown fences and
// rejects anything that does not satisfy the schema instead of trusting the
// reply shape.
type SkinReport struct {
	SkinType            string   `json:"skinType"`
	Concerns            []string `json:"concerns"`
	Summary             string   `json:"summary"`
	RecommendedKeywords []string `json:"recommendedKeywords"`
}

var ErrBadReport = fmt.Errorf("malformed skin report")

func ParseSkinReport(raw string) (SkinReport, error) {
	var r SkinReport
	if err := json.Unmarshal([]byte(stripFences(raw)), &r); err != nil {
		return SkinReport{}, fmt.Errorf("%w: %v", ErrBadReport, err)
	}

	if strings.TrimSpace(r.SkinType) == "" {
		return SkinReport{}, fmt.Errorf("%w: missing skinType", ErrBadReport)
	}
	if len(r.RecommendedKeywords) == 0 {
		return SkinReport{}, fmt.Errorf("%w: missing recommendedKeywords", ErrBadReport)
	}
	return r, nil
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
