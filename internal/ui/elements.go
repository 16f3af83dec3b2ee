package ui

import (
	"context"
	"errors"
	"fmt"

	"big5-analyzer/internal/domain"
)

// TextInput es el campo de texto libre.
type TextInput interface {
	Value() string
}

// Label es un elemento de solo texto (contador, rasgo dominante).
type Label interface {
	SetText(text string)
}

// Trigger es el control que dispara el analisis.
type Trigger interface {
	Content() string
	SetContent(content string)
	Disabled() bool
	SetDisabled(disabled bool)
}

// ResultsPanel es el contenedor de resultados, oculto hasta el primer exito.
type ResultsPanel interface {
	Show()
	ScrollIntoView()
}

// TraitList contiene las filas de rasgos.
type TraitList interface {
	Clear()
	Append(row domain.TraitRow)
}

// ProfileList contiene las frases de perfil. Append recibe texto plano, nunca markup.
type ProfileList interface {
	Clear()
	Append(profile string)
}

// Notifier muestra avisos bloqueantes al usuario.
type Notifier interface {
	Alert(message string)
}

// Analyzer es el colaborador que valida y consulta al servicio de prediccion.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (domain.Report, error)
}

// Elements agrupa las referencias a la superficie de UI que usa el controlador.
type Elements struct {
	Input     TextInput
	CharCount Label
	Trigger   Trigger
	Results   ResultsPanel
	Traits    TraitList
	Dominant  Label
	Profiles  ProfileList
	Notifier  Notifier
}

var ErrMissingElement = errors.New("ui element missing")

func (e Elements) validate() error {
	checks := []struct {
		name    string
		missing bool
	}{
		{"input", e.Input == nil},
		{"char count", e.CharCount == nil},
		{"trigger", e.Trigger == nil},
		{"results", e.Results == nil},
		{"traits", e.Traits == nil},
		{"dominant", e.Dominant == nil},
		{"profiles", e.Profiles == nil},
		{"notifier", e.Notifier == nil},
	}
	for _, c := range checks {
		if c.missing {
			return fmt.Errorf("%w: %s", ErrMissingElement, c.name)
		}
	}
	return nil
}
