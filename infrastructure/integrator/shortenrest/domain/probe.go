package shortenrestdomain

import "net/http"

// ProbeResult separa "a verificação foi feita e a chave é (in)válida"
// de "a verificação não pôde ser feita"
type ProbeResult struct {
	Performed  bool
	StatusCode int
	Err        error
}

// Valid só é verdadeiro quando a Shorten.REST respondeu exatamente 200
func (p ProbeResult) Valid() bool {
	return p.Performed && p.StatusCode == http.StatusOK
}

func (p ProbeResult) Outcome() string {
	switch {
	case !p.Performed:
		return "unreachable"
	case p.Valid():
		return "valid"
	default:
		return "invalid"
	}
}
