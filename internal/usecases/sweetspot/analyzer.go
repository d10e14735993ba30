package sweetspot

import (
	"math"

	"github.com/kontenflow/kontenflow-api/internal/domain"
)

// AnalyzerConfig são as constantes de negócio da projeção. O nicho cujo
// rótulo é igual a KeyNicheLabel recebe KeyNicheRate; os demais recebem
// DefaultNicheRate. A comparação do rótulo é por igualdade exata.
type AnalyzerConfig struct {
	KeyNicheLabel    string
	KeyNicheRate     float64
	DefaultNicheRate float64
	ConversionRate   float64
	SalesRate        float64
}

// Analyze projeta audiência e receita a partir das entradas do sweet spot.
// Função pura: mesma entrada, mesmo resultado, sem I/O.
//
//	assumptionAudience(nicho) = round(soma da audiência do nicho * taxa do nicho)
//	grandTotal               = soma dos assumptionAudience
//	conversion               = round(grandTotal * ConversionRate)
//	salesPerMonth            = round(conversion * SalesRate)
//	productPrice             = round(meta mensal / salesPerMonth), ou 0 sem vendas
//	revenuePerMonth          = salesPerMonth * productPrice
func Analyze(entries []*domain.SweetSpotEntry, targetMonthlyRevenue int64, cfg AnalyzerConfig) *domain.SweetSpotAnalysis {
	sums := make(map[string]int64)
	order := make([]string, 0)

	for _, entry := range entries {
		if _, seen := sums[entry.Niche]; !seen {
			order = append(order, entry.Niche)
		}
		sums[entry.Niche] += entry.Audience
	}

	analysis := &domain.SweetSpotAnalysis{
		Niches: make([]domain.NicheProjection, 0, len(order)),
	}

	for _, niche := range order {
		rate := cfg.DefaultNicheRate
		if niche == cfg.KeyNicheLabel {
			rate = cfg.KeyNicheRate
		}

		assumption := roundToInt(float64(sums[niche]) * rate)
		analysis.GrandTotal += assumption
		analysis.Niches = append(analysis.Niches, domain.NicheProjection{
			Niche:              niche,
			AudienceSum:        sums[niche],
			Rate:               rate,
			AssumptionAudience: assumption,
		})
	}

	analysis.Conversion = roundToInt(float64(analysis.GrandTotal) * cfg.ConversionRate)
	analysis.SalesPerMonth = roundToInt(float64(analysis.Conversion) * cfg.SalesRate)

	if analysis.SalesPerMonth > 0 {
		analysis.ProductPrice = roundToInt(float64(targetMonthlyRevenue) / float64(analysis.SalesPerMonth))
	}
	analysis.RevenuePerMonth = analysis.SalesPerMonth * analysis.ProductPrice

	return analysis
}

func roundToInt(f float64) int64 {
	return int64(math.Round(f))
}
