package domain

import "time"

// SweetSpotEntry representa o alcance e a hipótese de monetização de uma
// conta/nicho usados na projeção de receita
type SweetSpotEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Niche         string    `json:"niche"`
	Account       string    `json:"account"`
	Keywords      string    `json:"keywords"`
	Audience      int64     `json:"audience"`
	RevenueStream string    `json:"revenueStream"`
	Pricing       string    `json:"pricing"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateSweetSpotEntryRequest é o corpo aceito na criação de uma entrada
type CreateSweetSpotEntryRequest struct {
	Niche         string `json:"niche"`
	Account       string `json:"account"`
	Keywords      string `json:"keywords"`
	Audience      int64  `json:"audience"`
	RevenueStream string `json:"revenueStream"`
	Pricing       string `json:"pricing"`
}

// UpdateSweetSpotEntryRequest é uma atualização parcial de uma entrada
type UpdateSweetSpotEntryRequest struct {
	Niche         *string `json:"niche,omitempty"`
	Account       *string `json:"account,omitempty"`
	Keywords      *string `json:"keywords,omitempty"`
	Audience      *int64  `json:"audience,omitempty"`
	RevenueStream *string `json:"revenueStream,omitempty"`
	Pricing       *string `json:"pricing,omitempty"`
}

// SweetSpotSettings é o registro único de configuração da projeção
type SweetSpotSettings struct {
	UserID               string    `json:"userId"`
	TargetMonthlyRevenue int64     `json:"targetMonthlyRevenue"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// UpdateSweetSpotSettingsRequest atualiza o registro de configuração
type UpdateSweetSpotSettingsRequest struct {
	TargetMonthlyRevenue *int64 `json:"targetMonthlyRevenue,omitempty"`
}

// NicheProjection é a parcela da projeção atribuída a um nicho
type NicheProjection struct {
	Niche              string  `json:"niche"`
	AudienceSum        int64   `json:"audienceSum"`
	Rate               float64 `json:"rate"`
	AssumptionAudience int64   `json:"assumptionAudience"`
}

// SweetSpotAnalysis é o resultado da projeção de audiência e receita
type SweetSpotAnalysis struct {
	GrandTotal      int64             `json:"grandTotal"`
	Conversion      int64             `json:"conversion"`
	SalesPerMonth   int64             `json:"salesPerMonth"`
	RevenuePerMonth int64             `json:"revenuePerMonth"`
	ProductPrice    int64             `json:"productPrice"`
	Niches          []NicheProjection `json:"niches"`
}
