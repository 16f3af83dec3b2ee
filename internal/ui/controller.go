package ui

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"big5-analyzer/internal/domain"
	"big5-analyzer/internal/service"
)

const (
	// ValidationMessage se muestra cuando el texto no alcanza el minimo.
	ValidationMessage = "Please write at least 50 characters for a meaningful analysis."
	// FailureMessage se muestra ante cualquier falla de transporte.
	FailureMessage = "An error occurred during analysis. Please try again."
	// LoadingContent reemplaza el contenido del trigger mientras la request esta en curso.
	LoadingContent = "Analyzing..."

	// ScrollDelay deja que el panel se asiente antes de desplazarlo a la vista.
	ScrollDelay = 100 * time.Millisecond
)

// ErrSubmissionInFlight se devuelve si el trigger sigue deshabilitado por una request pendiente.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// State es el estado del controlador: Idle -> Submitting -> Idle.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	if s == StateSubmitting {
		return "submitting"
	}
	return "idle"
}

// Scheduler difiere la ejecucion de f.
type Scheduler func(d time.Duration, f func())

func timeScheduler(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Option configura un Controller en NewController.
type Option func(*Controller)

// WithScheduler reemplaza el temporizador del scroll diferido (tests, front-ends sin reloj).
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.schedule = s
		}
	}
}

// Controller conecta la superficie de UI con el servicio de analisis.
type Controller struct {
	el       Elements
	analyzer Analyzer
	logger   *zap.Logger
	schedule Scheduler

	mu      sync.Mutex
	state   State
	pending sync.WaitGroup
}

func NewController(el Elements, analyzer Analyzer, logger *zap.Logger, opts ...Option) (*Controller, error) {
	if err := el.validate(); err != nil {
		return nil, err
	}
	if analyzer == nil {
		return nil, service.ErrAnalysisNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		el:       el,
		analyzer: analyzer,
		logger:   logger,
		schedule: timeScheduler,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// State devuelve el estado actual.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnInput refleja el largo actual del texto, sin recortar ni limitar.
func (c *Controller) OnInput() {
	c.el.CharCount.SetText(strconv.Itoa(service.TextLength(c.el.Input.Value())))
}

// Submit valida, envia una unica request y renderiza el resultado.
// Devuelve *service.ValidationError, ErrSubmissionInFlight o el error de transporte;
// en todos los casos el aviso al usuario ya fue mostrado.
func (c *Controller) Submit(ctx context.Context) error {
	text, err := service.ValidateText(c.el.Input.Value())
	if err != nil {
		c.el.Notifier.Alert(ValidationMessage)
		return err
	}

	original, err := c.begin()
	if err != nil {
		return err
	}

	report, err := c.analyzer.Analyze(ctx, text)
	c.end(original)

	if err != nil {
		c.logger.Error("analysis failed", zap.Error(err))
		c.el.Notifier.Alert(FailureMessage)
		return err
	}

	c.render(report)
	return nil
}

// Settle espera a que terminen las acciones diferidas (scroll) ya programadas.
func (c *Controller) Settle() {
	c.pending.Wait()
}

func (c *Controller) begin() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting || c.el.Trigger.Disabled() {
		return "", ErrSubmissionInFlight
	}
	original := c.el.Trigger.Content()
	c.el.Trigger.SetContent(LoadingContent)
	c.el.Trigger.SetDisabled(true)
	c.state = StateSubmitting
	return original, nil
}

func (c *Controller) end(original string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.el.Trigger.SetContent(original)
	c.el.Trigger.SetDisabled(false)
	c.state = StateIdle
}

func (c *Controller) render(report domain.Report) {
	c.el.Results.Show()
	c.pending.Add(1)
	c.schedule(ScrollDelay, func() {
		defer c.pending.Done()
		c.el.Results.ScrollIntoView()
	})

	c.el.Traits.Clear()
	for _, row := range report.Rows {
		c.el.Traits.Append(row)
	}

	if report.Dominant != nil {
		c.el.Dominant.SetText(report.Dominant.String())
	} else {
		c.el.Dominant.SetText("")
	}

	c.el.Profiles.Clear()
	for _, profile := range report.Profiles {
		c.el.Profiles.Append(profile)
	}
}
