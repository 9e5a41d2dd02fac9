package domain

import "time"

type SyncStatus string

const (
	SyncStatusSuccess     SyncStatus = "success"
	SyncStatusFetchFailed SyncStatus = "fetch_failed"
	SyncStatusLoadFailed  SyncStatus = "load_failed"
)

// SyncResult é o resultado de uma execução busca → carga
type SyncResult struct {
	RunID        string     `json:"run_id"`
	Status       SyncStatus `json:"status"`
	From         string     `json:"from_date"`
	To           string     `json:"to_date"`
	Destination  string     `json:"destination"`
	Fetched      int        `json:"fetched"`
	Loaded       int        `json:"loaded"`
	NetSaleTotal float64    `json:"net_sale_total"`
	Error        string     `json:"error,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   time.Time  `json:"finished_at"`
}

func (r *SyncResult) Succeeded() bool {
	return r != nil && r.Status == SyncStatusSuccess
}
