package terminal

import (
	"encoding/json"
	"io"

	"big5-analyzer/internal/domain"
)

type jsonRow struct {
	Trait string  `json:"trait"`
	Score float64 `json:"score"`
	Level string  `json:"level"`
	Width float64 `json:"width"`
}

type jsonReport struct {
	Traits   []jsonRow             `json:"traits"`
	Dominant *domain.DominantTrait `json:"dominant,omitempty"`
	Profiles []string              `json:"profiles"`
}

// RenderJSON escribe el reporte como JSON para --format json.
func RenderJSON(w io.Writer, report domain.Report) error {
	out := jsonReport{
		Traits:   make([]jsonRow, 0, len(report.Rows)),
		Dominant: report.Dominant,
		Profiles: report.Profiles,
	}
	if out.Profiles == nil {
		out.Profiles = []string{}
	}
	for _, row := range report.Rows {
		out.Traits = append(out.Traits, jsonRow{
			Trait: row.Trait,
			Score: row.Score,
			Level: row.Level.String(),
			Width: row.Width(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
