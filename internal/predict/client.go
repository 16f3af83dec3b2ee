package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"big5-analyzer/internal/domain"
)

const predictPath = "/predict"

// Predictor define la interfaz del servicio externo que puntua rasgos a partir de texto.
type Predictor interface {
	Predict(ctx context.Context, text string) (domain.Prediction, error)
}

// HTTPClient implementa Predictor contra POST /predict.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	newID   func() string
}

// NewHTTPClient construye el cliente. timeout <= 0 deja la request sin limite de tiempo.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := &http.Client{}
	if timeout > 0 {
		httpClient.Timeout = timeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// Predict envia una unica request sin reintentos. Cualquier falla (red, status, JSON) es un TransportError.
func (c *HTTPClient) Predict(ctx context.Context, text string) (domain.Prediction, error) {
	requestID := c.newID()

	bodyBytes, err := json.Marshal(domain.PredictRequest{Text: text})
	if err != nil {
		return domain.Prediction{}, &TransportError{Op: "marshal request", RequestID: requestID, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+predictPath, bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.Prediction{}, &TransportError{Op: "create request", RequestID: requestID, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Prediction{}, &TransportError{Op: "do request", RequestID: requestID, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Prediction{}, &TransportError{Op: "read response", StatusCode: resp.StatusCode, RequestID: requestID, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("predict error status",
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(respBody), 512)),
		)
		return domain.Prediction{}, &TransportError{
			Op:         "predict",
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var wire predictResponse
	if err := json.Unmarshal(respBody, &wire); err != nil {
		return domain.Prediction{}, &TransportError{Op: "unmarshal response", StatusCode: resp.StatusCode, RequestID: requestID, Err: err}
	}
	prediction, err := wire.toPrediction()
	if err != nil {
		return domain.Prediction{}, &TransportError{Op: "decode response", StatusCode: resp.StatusCode, RequestID: requestID, Err: err}
	}

	c.logger.Debug("predict ok",
		zap.String("request_id", requestID),
		zap.Int("scores", len(prediction.Scores)),
		zap.Int("profiles", len(prediction.Profiles)),
		zap.Duration("latency", time.Since(start)),
	)
	return prediction, nil
}

// predictResponse refleja el cuerpo crudo: los punteros distinguen un null de un valor real.
type predictResponse struct {
	Scores   map[string]*float64 `json:"scores"`
	Profiles []*string           `json:"profiles"`
}

func (r predictResponse) toPrediction() (domain.Prediction, error) {
	var prediction domain.Prediction
	if r.Scores != nil {
		prediction.Scores = make(map[string]float64, len(r.Scores))
		for trait, score := range r.Scores {
			if score == nil {
				return domain.Prediction{}, fmt.Errorf("score %q is null", trait)
			}
			prediction.Scores[trait] = *score
		}
	}
	for i, profile := range r.Profiles {
		if profile == nil {
			return domain.Prediction{}, fmt.Errorf("profile %d is null", i)
		}
		prediction.Profiles = append(prediction.Profiles, *profile)
	}
	return prediction, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
