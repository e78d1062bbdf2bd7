package domain

import (
	"regexp"
	"time"
)

// MetricType é uma enumeração aberta: valores fora das constantes são mantidos como vieram
type MetricType string

const (
	MetricTypeRevenue        MetricType = "revenue"
	MetricTypeCustomers      MetricType = "customers"
	MetricTypeConversionRate MetricType = "conversion_rate"
)

func (t MetricType) IsKnown() bool {
	switch t {
	case MetricTypeRevenue, MetricTypeCustomers, MetricTypeConversionRate:
		return true
	}
	return false
}

func (t MetricType) String() string {
	return string(t)
}

type Metric struct {
	ID         string         `json:"id"`
	BusinessID string         `json:"business_id"`
	MetricType MetricType     `json:"metric_type"`
	Value      float64        `json:"value"`
	Period     string         `json:"period"`
	Timestamp  time.Time      `json:"timestamp"`
	Metadata   map[string]any `json:"metadata"`
}

type CreateMetricRequest struct {
	BusinessID string         `json:"business_id"`
	MetricType MetricType     `json:"metric_type"`
	Value      float64        `json:"value"`
	Period     string         `json:"period"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

func (r CreateMetricRequest) ToMetric(now time.Time) *Metric {
	return &Metric{
		BusinessID: r.BusinessID,
		MetricType: r.MetricType,
		Value:      r.Value,
		Period:     r.Period,
		Timestamp:  now,
		Metadata:   r.Metadata,
	}
}

// MetricSample é a forma reduzida enviada para a análise de IA
type MetricSample struct {
	MetricType MetricType
	Value      float64
	Period     string
}

type MetricsDump struct {
	Count    int       `json:"count"`
	Database string    `json:"database"`
	Metrics  []*Metric `json:"metrics"`
}

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsMonthPeriod indica se o período segue o formato YYYY-MM.
// A ordenação é sempre lexical, então outros formatos ordenam de forma inesperada.
func IsMonthPeriod(period string) bool {
	return periodPattern.MatchString(period)
}
