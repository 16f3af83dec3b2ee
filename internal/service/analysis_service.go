package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"big5-analyzer/internal/domain"
	"big5-analyzer/internal/predict"
)

// MinTextLength es el minimo de caracteres (ya recortado el texto) para pedir un analisis.
const MinTextLength = 50

var (
	ErrTextTooShort          = errors.New("text too short")
	ErrAnalysisNotConfigured = errors.New("analysis service not configured")
)

// ValidationError indica que el texto no llega al minimo; no se envio ninguna request.
type ValidationError struct {
	Length int
	Min    int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("text has %d characters, at least %d required", e.Length, e.Min)
}

func (e *ValidationError) Is(target error) bool { return target == ErrTextTooShort }

// TextLength cuenta caracteres (runas), no bytes.
func TextLength(text string) int {
	return utf8.RuneCountInString(text)
}

// ValidateText recorta el texto y verifica el minimo.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if n := TextLength(trimmed); n < MinTextLength {
		return "", &ValidationError{Length: n, Min: MinTextLength}
	}
	return trimmed, nil
}

// AnalysisService valida el texto, consulta al predictor y arma el reporte.
type AnalysisService struct {
	predictor predict.Predictor
	logger    *zap.Logger
}

func NewAnalysisService(predictor predict.Predictor, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		predictor: predictor,
		logger:    logger,
	}
}

// Analyze hace a lo sumo una llamada al predictor. Las fallas de transporte no se reintentan.
func (s *AnalysisService) Analyze(ctx context.Context, text string) (domain.Report, error) {
	if s == nil || s.predictor == nil {
		return domain.Report{}, ErrAnalysisNotConfigured
	}

	trimmed, err := ValidateText(text)
	if err != nil {
		return domain.Report{}, err
	}

	s.logger.Info("analysis requested", zap.Int("chars", TextLength(trimmed)))

	prediction, err := s.predictor.Predict(ctx, trimmed)
	if err != nil {
		return domain.Report{}, fmt.Errorf("predict: %w", err)
	}

	report := domain.BuildReport(prediction)
	fields := []zap.Field{
		zap.Int("rows", len(report.Rows)),
		zap.Int("profiles", len(report.Profiles)),
	}
	if report.Dominant != nil {
		fields = append(fields, zap.String("dominant", report.Dominant.Trait))
	}
	s.logger.Info("analysis completed", fields...)
	return report, nil
}
