package reporting

import (
	"time"

	"github.com/samber/lo"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
)

// SchemaFor filtra o catálogo pelos ids pedidos mantendo a ordem do catálogo.
// Ids desconhecidos são descartados e repetidos aparecem uma vez.
func SchemaFor(ids []string) []domain.FieldDefinition {
	requested := lo.SliceToMap(ids, func(id string) (string, struct{}) {
		return id, struct{}{}
	})

	return lo.Filter(AllFields(), func(f domain.FieldDefinition, _ int) bool {
		_, ok := requested[f.Name]
		return ok
	})
}

// MapToRows gera uma linha por clique, na ordem dos cliques, com os valores na ordem de fields.
// Campos sem extrator viram "".
func MapToRows(fields []domain.FieldDefinition, clicks []domain.Click, hourLocation *time.Location) []domain.Row {
	b := batch{size: len(clicks), hourLocation: hourLocation}

	rows := make([]domain.Row, 0, len(clicks))
	for _, click := range clicks {
		values := make([]any, 0, len(fields))
		for _, field := range fields {
			extract, ok := extractors[field.Name]
			if !ok {
				values = append(values, "")
				continue
			}
			values = append(values, extract(click, b))
		}
		rows = append(rows, domain.Row{Values: values})
	}

	return rows
}
