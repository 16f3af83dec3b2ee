package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"big5-analyzer/internal/domain"
	"big5-analyzer/internal/predict"
)

var longText = strings.Repeat("I enjoy quiet evenings with a good book. ", 3)

func TestAnalysisServiceHappyPath(t *testing.T) {
	predictor := &predict.MockClient{Response: domain.Prediction{
		Scores: map[string]float64{
			domain.TraitOpenness:          0.70,
			domain.TraitConscientiousness: 0.40,
			domain.TraitExtraversion:      0.10,
		},
		Profiles: []string{"Analytical thinker", "Prefers structure"},
	}}
	svc := NewAnalysisService(predictor, zap.NewNop())

	report, err := svc.Analyze(context.Background(), "  "+longText+"  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if predictor.Calls() != 1 {
		t.Fatalf("expected predictor called once, got %d", predictor.Calls())
	}
	if predictor.LastText() != strings.TrimSpace(longText) {
		t.Fatalf("expected trimmed text sent, got %q", predictor.LastText())
	}
	if len(report.Rows) != 3 || report.Dominant == nil || report.Dominant.Trait != domain.TraitOpenness {
		t.Fatalf("unexpected report %+v", report)
	}
	if len(report.Profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(report.Profiles))
	}
}

func TestAnalysisServiceRejectsShortText(t *testing.T) {
	predictor := &predict.MockClient{}
	svc := NewAnalysisService(predictor, zap.NewNop())

	shortText := "   " + strings.Repeat("a", MinTextLength-1) + "      "
	_, err := svc.Analyze(context.Background(), shortText)
	if !errors.Is(err, ErrTextTooShort) {
		t.Fatalf("expected ErrTextTooShort, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Length != MinTextLength-1 || ve.Min != MinTextLength {
		t.Fatalf("unexpected validation error %+v", ve)
	}
	if predictor.Calls() != 0 {
		t.Fatalf("expected no request, got %d calls", predictor.Calls())
	}
}

func TestAnalysisServiceAcceptsExactMinimum(t *testing.T) {
	predictor := &predict.MockClient{}
	svc := NewAnalysisService(predictor, zap.NewNop())
	if _, err := svc.Analyze(context.Background(), strings.Repeat("é", MinTextLength)); err != nil {
		t.Fatalf("expected 50 runes to pass, got %v", err)
	}
}

func TestAnalysisServiceWrapsTransportError(t *testing.T) {
	predictor := &predict.MockClient{Err: &predict.TransportError{Op: "do request", Err: errors.New("connection refused")}}
	svc := NewAnalysisService(predictor, zap.NewNop())

	_, err := svc.Analyze(context.Background(), longText)
	if !errors.Is(err, predict.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if predictor.Calls() != 1 {
		t.Fatalf("expected exactly one attempt, got %d", predictor.Calls())
	}
}

func TestAnalysisServiceNotConfigured(t *testing.T) {
	var nilSvc *AnalysisService
	if _, err := nilSvc.Analyze(context.Background(), longText); !errors.Is(err, ErrAnalysisNotConfigured) {
		t.Fatalf("expected ErrAnalysisNotConfigured, got %v", err)
	}
	if _, err := NewAnalysisService(nil, nil).Analyze(context.Background(), longText); !errors.Is(err, ErrAnalysisNotConfigured) {
		t.Fatalf("expected ErrAnalysisNotConfigured without predictor, got %v", err)
	}
}
