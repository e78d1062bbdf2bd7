package domain

import "sort"

type KPIs struct {
	MonthlyRevenue       float64 `json:"monthly_revenue"`
	MonthlyRevenueChange float64 `json:"monthly_revenue_change"`
	CustomerGrowth       float64 `json:"customer_growth"`
	CustomerGrowthChange float64 `json:"customer_growth_change"`
	ConversionRate       float64 `json:"conversion_rate"`
	ConversionRateChange float64 `json:"conversion_rate_change"`
}

type TrendPoint struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Customers float64 `json:"customers"`
}

type CategoryGrowth struct {
	Category string  `json:"category"`
	Growth   float64 `json:"growth"`
}

// PeriodSum é a soma dos valores de um tipo de métrica em um período
type PeriodSum struct {
	Period string
	Total  float64
}

// CategoryBounds guarda o primeiro e o último valor de um tipo de métrica na ordem dos períodos
type CategoryBounds struct {
	MetricType MetricType
	First      float64
	Last       float64
}

// RelativeChange retorna (current-prior)/prior, ou 0 quando prior é zero
func RelativeChange(prior, current float64) float64 {
	if prior == 0 {
		return 0
	}
	return (current - prior) / prior
}

// GrowthPercentage retorna a variação percentual entre o primeiro e o último valor
func GrowthPercentage(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

// LatestValueAndChange recebe as entradas mais recentes primeiro
func LatestValueAndChange(latest []*Metric) (float64, float64) {
	if len(latest) == 0 {
		return 0, 0
	}

	current := latest[0].Value
	if len(latest) < 2 {
		return current, 0
	}

	return current, RelativeChange(latest[1].Value, current)
}

// MergeTrends combina as séries de receita e clientes pelo período.
// A série de receita define os períodos retornados; clientes ausentes viram zero.
func MergeTrends(revenue, customers []PeriodSum) []TrendPoint {
	customersByPeriod := make(map[string]float64, len(customers))
	for _, c := range customers {
		customersByPeriod[c.Period] = c.Total
	}

	trends := make([]TrendPoint, 0, len(revenue))
	for _, r := range revenue {
		trends = append(trends, TrendPoint{
			Month:     r.Period,
			Revenue:   r.Total,
			Customers: customersByPeriod[r.Period],
		})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Month < trends[j].Month
	})

	return trends
}

// GrowthByCategory calcula o crescimento percentual de cada tipo, ordenado pelo nome
func GrowthByCategory(bounds []CategoryBounds) []CategoryGrowth {
	growth := make([]CategoryGrowth, 0, len(bounds))
	for _, b := range bounds {
		growth = append(growth, CategoryGrowth{
			Category: b.MetricType.String(),
			Growth:   GrowthPercentage(b.First, b.Last),
		})
	}

	sort.Slice(growth, func(i, j int) bool {
		return growth[i].Category < growth[j].Category
	})

	return growth
}
