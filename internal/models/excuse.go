package models

import "github.com/google/uuid"

// ExcuseRequest is the body of POST /api/excuses.
type ExcuseRequest struct {
	Situation   string `json:"situation"`
	BypassCache bool   `json:"bypass_cache"`
}

// ExcuseResponse is one produced excuse.
type ExcuseResponse struct {
	ID             uuid.UUID `json:"id"`
	Situation      string    `json:"situation"`
	Excuse         string    `json:"excuse"`
	Source         string    `json:"source"`
	Classification string    `json:"classification,omitempty"`
}

// CategoryResponse describes one keyword category of the corpus.
type CategoryResponse struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Excuses  int      `json:"excuses"`
}

// CorpusResponse summarises the local corpus.
type CorpusResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Phrases    []string           `json:"phrases"`
	Generic    int                `json:"generic"`
}

// CacheClearResponse reports how many entries a clear removed.
type CacheClearResponse struct {
	Cleared int `json:"cleared"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status        string `json:"status"`
	Mode          string `json:"mode"`
	Platform      string `json:"platform,omitempty"`
	CacheEntries  int    `json:"cache_entries"`
	CacheCapacity int    `json:"cache_capacity"`
}
