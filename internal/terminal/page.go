package terminal

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"unicode"

	"big5-analyzer/internal/domain"
	"big5-analyzer/internal/ui"
)

const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"

	barFilled = "█"
	barEmpty  = "░"
)

var levelColors = map[string]string{
	"high":     colorGreen,
	"moderate": colorYellow,
	"low":      colorCyan,
}

// Page implementa la superficie de UI del controlador sobre una terminal.
// Todas las escrituras pasan por el mismo mutex: el scroll diferido corre en otra goroutine.
type Page struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	color    bool
	barWidth int

	Input     *TextBuffer
	CharCount *Counter
	Trigger   *Button
	Results   *Panel
	Traits    *TraitBars
	Dominant  *Summary
	Profiles  *ProfileList
	Alerts    *Alerter
}

type Options struct {
	Color       bool
	BarWidth    int
	ButtonLabel string
}

func NewPage(out, errOut io.Writer, opts Options) *Page {
	if errOut == nil {
		errOut = out
	}
	if opts.BarWidth <= 0 {
		opts.BarWidth = 40
	}
	if opts.ButtonLabel == "" {
		opts.ButtonLabel = "Analyze Personality"
	}
	p := &Page{
		out:      out,
		errOut:   errOut,
		color:    opts.Color,
		barWidth: opts.BarWidth,
	}
	p.Input = &TextBuffer{}
	p.CharCount = &Counter{page: p}
	p.Trigger = &Button{page: p, content: opts.ButtonLabel}
	p.Results = &Panel{page: p}
	p.Traits = &TraitBars{page: p}
	p.Dominant = &Summary{page: p}
	p.Profiles = &ProfileList{page: p}
	p.Alerts = &Alerter{page: p}
	return p
}

// Elements devuelve las referencias que espera ui.NewController.
func (p *Page) Elements() ui.Elements {
	return ui.Elements{
		Input:     p.Input,
		CharCount: p.CharCount,
		Trigger:   p.Trigger,
		Results:   p.Results,
		Traits:    p.Traits,
		Dominant:  p.Dominant,
		Profiles:  p.Profiles,
		Notifier:  p.Alerts,
	}
}

func (p *Page) colorize(text, color string) string {
	if !p.color || color == "" {
		return text
	}
	return color + text + colorReset
}

func (p *Page) println(w io.Writer, line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(w, line)
}

// plain neutraliza caracteres de control para que el texto remoto no pueda inyectar secuencias de terminal.
func plain(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// TextBuffer es el campo de texto: acumula lineas tal como se ingresan.
type TextBuffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *TextBuffer) Value() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.lines, "\n")
}

func (b *TextBuffer) AppendLine(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
}

func (b *TextBuffer) Set(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = strings.Split(text, "\n")
}

func (b *TextBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

type Counter struct {
	page *Page
	text string
}

func (c *Counter) SetText(text string) {
	c.text = text
	c.page.println(c.page.out, c.page.colorize("chars: "+text, colorCyan))
}

// Button guarda contenido y estado; al deshabilitarse muestra el contenido (indicador de carga).
type Button struct {
	page     *Page
	content  string
	disabled bool
}

func (b *Button) Content() string { return b.content }

func (b *Button) SetContent(content string) { b.content = content }

func (b *Button) Disabled() bool { return b.disabled }

func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	if disabled {
		b.page.println(b.page.out, b.page.colorize(b.content, colorYellow))
	}
}

type Panel struct {
	page     *Page
	visible  bool
	scrolled int
}

func (p *Panel) Show() {
	p.visible = true
	p.page.println(p.page.out, p.page.colorize("===== Personality Profile =====", colorBold+colorCyan))
}

// ScrollIntoView no tiene efecto visible: la terminal ya muestra la ultima salida.
func (p *Panel) ScrollIntoView() {
	p.page.mu.Lock()
	p.scrolled++
	p.page.mu.Unlock()
}

func (p *Panel) Visible() bool { return p.visible }

type TraitBars struct {
	page *Page
	rows int
}

func (t *TraitBars) Clear() {
	t.rows = 0
}

func (t *TraitBars) Append(row domain.TraitRow) {
	t.rows++
	class := row.Level.Class()
	header := fmt.Sprintf("%-18s %s", row.Trait, t.page.colorize(fmt.Sprintf("%s (%s)", row.Level, row.ScoreText()), levelColors[class]))
	t.page.println(t.page.out, header+"\n"+t.page.colorize(Bar(row.Width(), t.page.barWidth), levelColors[class]))
}

// Bar dibuja una barra de width celdas rellena en proporcion a percent (0-100).
func Bar(percent float64, width int) string {
	filled := int(math.Round(percent / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, width-filled)
}

type Summary struct {
	page *Page
	text string
}

func (s *Summary) SetText(text string) {
	s.text = text
	if text == "" {
		text = "-"
	}
	s.page.println(s.page.out, "Dominant trait: "+s.page.colorize(text, colorBold))
}

type ProfileList struct {
	page  *Page
	items []string
}

func (l *ProfileList) Clear() {
	l.items = nil
	l.page.println(l.page.out, "Profiles:")
}

func (l *ProfileList) Append(profile string) {
	l.items = append(l.items, profile)
	l.page.println(l.page.out, "  - "+plain(profile))
}

// Items devuelve las frases mostradas, en orden.
func (l *ProfileList) Items() []string {
	return append([]string(nil), l.items...)
}

type Alerter struct {
	page *Page
}

func (a *Alerter) Alert(message string) {
	a.page.println(a.page.errOut, a.page.colorize("! "+message, colorRed))
}
