package domain

import "time"

// DefaultUserID é o usuário único da aplicação enquanto não existe autenticação
const DefaultUserID = "default-user"

// ContentStatus representa a etapa do pipeline em que o conteúdo se encontra
type ContentStatus string

const (
	StatusIdea           ContentStatus = "Idea"
	StatusScript         ContentStatus = "Script"
	StatusRecorded       ContentStatus = "Recorded"
	StatusEdited         ContentStatus = "Edited"
	StatusReadyToPublish ContentStatus = "Ready to Publish"
	StatusPublished      ContentStatus = "Published"
)

// ContentStatusOrder lista as etapas do pipeline na ordem do fluxo de produção
var ContentStatusOrder = []ContentStatus{
	StatusIdea,
	StatusScript,
	StatusRecorded,
	StatusEdited,
	StatusReadyToPublish,
	StatusPublished,
}

// Valid indica se o status pertence ao conjunto fixo de etapas do pipeline
func (s ContentStatus) Valid() bool {
	for _, status := range ContentStatusOrder {
		if s == status {
			return true
		}
	}
	return false
}

// HistoryEntry registra uma transição de status de um conteúdo.
// PreviousStatus é nulo apenas na entrada criada junto com o conteúdo.
type HistoryEntry struct {
	Timestamp      time.Time      `json:"timestamp"`
	PreviousStatus *ContentStatus `json:"previousStatus,omitempty"`
	NewStatus      ContentStatus  `json:"newStatus"`
}

// ContentChecklist são as quatro marcações de completude do roteiro.
// São independentes entre si e independentes do status.
type ContentChecklist struct {
	Intro        bool `json:"intro"`
	MainPoints   bool `json:"mainPoints"`
	CallToAction bool `json:"callToAction"`
	Outro        bool `json:"outro"`
}

// ContentMetrics guarda o desempenho do conteúdo depois de publicado
type ContentMetrics struct {
	Views    int64   `json:"views"`
	Likes    int64   `json:"likes"`
	Comments int64   `json:"comments"`
	Shares   int64   `json:"shares"`
	Rating   float64 `json:"rating"`
	Insights string  `json:"insights"`
}

// ContentItem representa uma peça de conteúdo planejada, produzida ou publicada
type ContentItem struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	Title            string           `json:"title"`
	Platform         string           `json:"platform"`
	Status           ContentStatus    `json:"status"`
	Tags             []string         `json:"tags"`
	PublicationDate  *time.Time       `json:"publicationDate,omitempty"`
	ContentChecklist ContentChecklist `json:"contentChecklist"`
	Metrics          *ContentMetrics  `json:"metrics,omitempty"`
	History          []HistoryEntry   `json:"history"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// CreateContentItemRequest é o corpo aceito na criação de conteúdo.
// O checklist nunca é aceito na criação: todo conteúdo nasce com as
// quatro marcações desmarcadas.
type CreateContentItemRequest struct {
	Title           string        `json:"title"`
	Platform        string        `json:"platform"`
	Status          ContentStatus `json:"status"`
	Tags            []string      `json:"tags"`
	PublicationDate *time.Time    `json:"publicationDate,omitempty"`
}

// ChecklistUpdate atualiza apenas as chaves presentes do checklist
type ChecklistUpdate struct {
	Intro        *bool `json:"intro,omitempty"`
	MainPoints   *bool `json:"mainPoints,omitempty"`
	CallToAction *bool `json:"callToAction,omitempty"`
	Outro        *bool `json:"outro,omitempty"`
}

// MetricsUpdate atualiza apenas as chaves presentes das métricas
type MetricsUpdate struct {
	Views    *int64   `json:"views,omitempty"`
	Likes    *int64   `json:"likes,omitempty"`
	Comments *int64   `json:"comments,omitempty"`
	Shares   *int64   `json:"shares,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Insights *string  `json:"insights,omitempty"`
}

// UpdateContentItemRequest é uma atualização parcial: somente os campos
// presentes são aplicados sobre o conteúdo existente
type UpdateContentItemRequest struct {
	Title            *string          `json:"title,omitempty"`
	Platform         *string          `json:"platform,omitempty"`
	Status           *ContentStatus   `json:"status,omitempty"`
	Tags             *[]string        `json:"tags,omitempty"`
	PublicationDate  *time.Time       `json:"publicationDate,omitempty"`
	ContentChecklist *ChecklistUpdate `json:"contentChecklist,omitempty"`
	Metrics          *MetricsUpdate   `json:"metrics,omitempty"`
}

// ContentListFilters filtra a listagem de conteúdos
type ContentListFilters struct {
	Statuses  []ContentStatus
	Platforms []string
}
