package domain

import "time"

// CredentialAuditReport resume uma rodada de verificação das chaves armazenadas
type CredentialAuditReport struct {
	Total       int       `json:"total"`
	Valid       int       `json:"valid"`
	Invalid     int       `json:"invalid"`
	Unreachable int       `json:"unreachable"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}
