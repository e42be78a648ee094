package domain

// Click é um registro de clique já desacoplado do formato da Shorten.REST.
// CreatedAt está em milissegundos desde a época Unix.
type Click struct {
	Alias       string
	AliasID     string
	Browser     string
	Country     string
	CreatedAt   int64
	Destination string
	Domain      string
	OS          string
}
