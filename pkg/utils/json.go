package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa com indentação por tabs; usado na saída da CLI
func PrettyJson(in any) (string, error) {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}
