package reporting

import (
	"time"

	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/pkg/utils"
)

// batch é o contexto compartilhado por todas as linhas de uma resposta
type batch struct {
	size         int
	hourLocation *time.Location
}

type extractor func(click domain.Click, b batch) any

type catalogEntry struct {
	definition domain.FieldDefinition
	extract    extractor
}

func dimension(name string, semanticType domain.SemanticType, extract extractor) catalogEntry {
	return catalogEntry{
		definition: domain.FieldDefinition{
			Name:     name,
			DataType: domain.DataTypeString,
			Semantics: domain.Semantics{
				ConceptType:  domain.ConceptTypeDimension,
				SemanticType: semanticType,
			},
		},
		extract: extract,
	}
}

// catalog define os campos expostos ao host e como cada um é extraído de um clique.
// A ordem de declaração é a ordem das colunas na resposta.
var catalog = []catalogEntry{
	dimension("aliasName", domain.SemanticTypeText, func(c domain.Click, _ batch) any { return c.Alias }),
	dimension("aliasId", domain.SemanticTypeText, func(c domain.Click, _ batch) any { return c.AliasID }),
	dimension("browser", domain.SemanticTypeText, func(c domain.Click, _ batch) any { return c.Browser }),
	dimension("country", domain.SemanticTypeCountryCode, func(c domain.Click, _ batch) any { return c.Country }),
	dimension("date", domain.SemanticTypeYearMonthDay, func(c domain.Click, _ batch) any {
		return utils.FormatDate(c.CreatedAt)
	}),
	dimension("hour", domain.SemanticTypeHour, func(c domain.Click, b batch) any {
		return utils.FormatHour(c.CreatedAt, b.hourLocation)
	}),
	dimension("destination", domain.SemanticTypeURL, func(c domain.Click, _ batch) any { return c.Destination }),
	dimension("domain", domain.SemanticTypeText, func(c domain.Click, _ batch) any { return c.Domain }),
	// grafia mantida: hosts existentes já salvaram relatórios com este id
	dimension("opreatingSystem", domain.SemanticTypeText, func(c domain.Click, _ batch) any { return c.OS }),
	{
		definition: domain.FieldDefinition{
			Name:     "clickCount",
			DataType: domain.DataTypeNumber,
			Semantics: domain.Semantics{
				ConceptType:  domain.ConceptTypeMetric,
				SemanticType: domain.SemanticTypeNumber,
			},
			DefaultAggregationType: domain.AggregationCount,
		},
		// total do lote, repetido em todas as linhas
		extract: func(_ domain.Click, b batch) any { return b.size },
	},
}

var extractors = buildExtractors()

func buildExtractors() map[string]extractor {
	m := make(map[string]extractor, len(catalog))
	for _, entry := range catalog {
		m[entry.definition.Name] = entry.extract
	}
	return m
}

// AllFields devolve uma cópia nova do catálogo a cada chamada
func AllFields() []domain.FieldDefinition {
	fields := make([]domain.FieldDefinition, 0, len(catalog))
	for _, entry := range catalog {
		fields = append(fields, entry.definition)
	}
	return fields
}
