package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vybe/backend/internal/domain"
)

const feedbackJSON = `{
  "overall_score": 0.44,
  "components": {"fit": 0.8, "color": 0.7, "proportions": 0.75, "cohesion": 0.7, "vibe_match": 0.2},
  "weights": {"fit": 0.15, "color": 0.1, "proportions": 0.1, "cohesion": 0.1, "vibe_match": 0.55},
  "vibe": "The outfit reads relaxed rather than formal.",
  "tips": [{"label": "Footwear", "text": "Swap sneakers for leather dress shoes.", "score": 0.3}],
  "action_plan": [{"recommendation": "Add a structured blazer", "impact_estimate": 0.3}],
  "tags": ["casual", "relaxed"]
}`

func TestEvaluate_ParsesFencedReport(t *testing.T) {
	model := &MockGenerativeClient{
		textFn: func(parts []domain.PromptPart) (string, error) {
			text := promptText(parts)
			if !strings.Contains(text, `the target vibe: "formal"`) {
				t.Errorf("prompt missing style, got: %s", text)
			}
			if countImages(parts) != 1 {
				t.Errorf("expected 1 image part, got %d", countImages(parts))
			}
			return "```json\n" + feedbackJSON + "\n```", nil
		},
	}
	service := NewFeedbackService(model)

	report, err := service.Evaluate(context.Background(), jpegAttachment(), "formal")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if report.OverallScore != 0.44 {
		t.Errorf("overall_score = %v, want 0.44", report.OverallScore)
	}
	if report.Components["vibe_match"] != 0.2 {
		t.Errorf("vibe_match = %v, want 0.2", report.Components["vibe_match"])
	}
	if report.Weights["vibe_match"] != 0.55 {
		t.Errorf("weights.vibe_match = %v, want 0.55", report.Weights["vibe_match"])
	}
	if len(report.Tips) != 1 || report.Tips[0].Label != "Footwear" {
		t.Errorf("tips = %+v", report.Tips)
	}
	if report.Tips[0].Score == nil || *report.Tips[0].Score != 0.3 {
		t.Errorf("tip score = %v, want 0.3", report.Tips[0].Score)
	}
	if len(report.ActionPlan) != 1 || report.ActionPlan[0].ImpactEstimate != 0.3 {
		t.Errorf("action_plan = %+v", report.ActionPlan)
	}
}

func TestEvaluate_MissingInputs(t *testing.T) {
	service := NewFeedbackService(&MockGenerativeClient{})

	if _, err := service.Evaluate(context.Background(), jpegAttachment(), ""); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("missing style: error = %v, want ErrInvalidRequest", err)
	}
	if _, err := service.Evaluate(context.Background(), domain.ImageAttachment{}, "formal"); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("missing image: error = %v, want ErrInvalidRequest", err)
	}
}

func TestEvaluate_NoModelOutput(t *testing.T) {
	model := &MockGenerativeClient{
		textFn: func(parts []domain.PromptPart) (string, error) {
			return "", &domain.NoOutputError{FinishReason: "MAX_TOKENS"}
		},
	}
	service := NewFeedbackService(model)

	_, err := service.Evaluate(context.Background(), jpegAttachment(), "formal")

	var noOutput *domain.NoOutputError
	if !errors.As(err, &noOutput) {
		t.Fatalf("error = %v, want *domain.NoOutputError", err)
	}
	if noOutput.FinishReason != "MAX_TOKENS" {
		t.Errorf("finish reason = %q, want MAX_TOKENS", noOutput.FinishReason)
	}
}

func TestEvaluate_UnparseableOutputKeepsRaw(t *testing.T) {
	raw := "Here are my thoughts on the outfit..."
	model := &MockGenerativeClient{
		textFn: func(parts []domain.PromptPart) (string, error) {
			return raw, nil
		},
	}
	service := NewFeedbackService(model)

	_, err := service.Evaluate(context.Background(), jpegAttachment(), "formal")

	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *domain.ParseError", err)
	}
	if parseErr.Raw != raw {
		t.Errorf("Raw = %q, want %q", parseErr.Raw, raw)
	}
}
