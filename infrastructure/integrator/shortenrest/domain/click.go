package shortenrestdomain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Click representa um clique como devolvido por GET /clicks
type Click struct {
	Alias       LooseString `json:"alias"`
	AliasID     LooseString `json:"aliasId"`
	Browser     LooseString `json:"browser"`
	Country     LooseString `json:"country"`
	CreatedAt   EpochMillis `json:"createdAt"`
	Destination LooseString `json:"destination"`
	Domain      LooseString `json:"domain"`
	OS          LooseString `json:"os"`
}

type ClicksResponse struct {
	Clicks []Click `json:"clicks"`
}

// LooseString aceita texto, número ou booleano; null vira vazio
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("valor não escalar para texto: %s", data)
	default:
		*s = LooseString(data)
	}
	return nil
}

// EpochMillis aceita inteiro, decimal ou número entre aspas; null vira zero
type EpochMillis int64

func (m *EpochMillis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*m = EpochMillis(v)
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("createdAt inválido: %s", data)
	}
	*m = EpochMillis(math.Trunc(f))
	return nil
}
