package presentation

import (
	"zlayer/internal/layers"
	"zlayer/internal/scan"
)

// LayerDTO represents a fixed layer entry for presentation
type LayerDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// FindingDTO represents a scan finding for presentation
type FindingDTO struct {
	Severity string `json:"severity"`
	Value    int    `json:"value"`
	Line     int    `json:"line"`
}

// FromDomainLayers converts fixed layer entries to DTOs
func FromDomainLayers(ls []layers.Layer) []LayerDTO {
	dtos := make([]LayerDTO, len(ls))
	for i, l := range ls {
		dtos[i] = LayerDTO{Name: l.Name, Value: l.Value}
	}
	return dtos
}

// FromDomainFindings converts scan findings to DTOs
func FromDomainFindings(fs []scan.Finding) []FindingDTO {
	dtos := make([]FindingDTO, len(fs))
	for i, f := range fs {
		dtos[i] = FindingDTO{
			Severity: f.Severity.String(),
			Value:    f.Value,
			Line:     f.Line,
		}
	}
	return dtos
}
