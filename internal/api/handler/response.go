package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Mensagens usam o nome do campo no JSON, que é o que o host enviou
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao escrever resposta")
	}
}

// validationDetails converte os erros do validator em mensagens por campo
func validationDetails(err error) map[string]string {
	details := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		details["request"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrors {
		details[fieldErr.Namespace()] = getValidationErrorMessage(fieldErr)
	}

	return details
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " é obrigatório"
	case "min":
		return err.Field() + " deve ter ao menos " + err.Param() + " item(ns)"
	default:
		return err.Field() + " é inválido"
	}
}
