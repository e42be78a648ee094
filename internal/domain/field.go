package domain

type DataType string

const (
	DataTypeString DataType = "STRING"
	DataTypeNumber DataType = "NUMBER"
)

type ConceptType string

const (
	ConceptTypeDimension ConceptType = "DIMENSION"
	ConceptTypeMetric    ConceptType = "METRIC"
)

type SemanticType string

const (
	SemanticTypeText         SemanticType = "TEXT"
	SemanticTypeCountryCode  SemanticType = "COUNTRY_CODE"
	SemanticTypeYearMonthDay SemanticType = "YEAR_MONTH_DAY"
	SemanticTypeHour         SemanticType = "HOUR"
	SemanticTypeURL          SemanticType = "URL"
	SemanticTypeNumber       SemanticType = "NUMBER"
)

type AggregationType string

const AggregationCount AggregationType = "COUNT"

// FieldDefinition descreve uma coluna declarada ao host
type FieldDefinition struct {
	Name                   string          `json:"name"`
	DataType               DataType        `json:"dataType"`
	Semantics              Semantics       `json:"semantics"`
	DefaultAggregationType AggregationType `json:"defaultAggregationType,omitempty"`
}

type Semantics struct {
	ConceptType  ConceptType  `json:"conceptType"`
	SemanticType SemanticType `json:"semanticType"`
}

func (f FieldDefinition) IsMetric() bool {
	return f.Semantics.ConceptType == ConceptTypeMetric
}
