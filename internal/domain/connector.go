package domain

const (
	AuthTypeKey = "KEY"

	ErrorCodeNone               = "NONE"
	ErrorCodeInvalidCredentials = "INVALID_CREDENTIALS"
)

type AuthTypeResponse struct {
	Type    string `json:"type"`
	HelpURL string `json:"helpUrl"`
}

type SetCredentialsRequest struct {
	Key string `json:"key"`
}

type SetCredentialsResponse struct {
	ErrorCode string `json:"errorCode"`
}

type ConfigResponse struct {
	ConfigParams []any `json:"configParams"`
}

type SchemaResponse struct {
	Schema []FieldDefinition `json:"schema"`
}

type RequestedField struct {
	Name string `json:"name" validate:"required"`
}

type DataRequest struct {
	Fields []RequestedField `json:"fields" validate:"required,min=1,dive"`
}

// FieldNames devolve os ids pedidos na ordem em que chegaram
func (r DataRequest) FieldNames() []string {
	names := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		names = append(names, f.Name)
	}
	return names
}

type Row struct {
	Values []any `json:"values"`
}

type DataResponse struct {
	Schema []FieldDefinition `json:"schema"`
	Rows   []Row             `json:"rows"`
}
