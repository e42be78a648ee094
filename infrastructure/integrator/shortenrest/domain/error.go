package shortenrestdomain

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus = errors.New("status inesperado da Shorten.REST")
	ErrMissingClicks    = errors.New("resposta sem o campo clicks")
)

// FetchError indica que a busca de cliques falhou e nenhum dado foi devolvido
type FetchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("shortenrest: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("shortenrest: %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
