package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TermosCriados       prometheus.Counter
	FalhasValidacao     prometheus.Counter
	ColisoesNumeroTermo prometheus.Counter
	CriacaoDuration     prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		TermosCriados: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lgpd_termos_criados_total",
			Help: "Total number of consent records created",
		}),
		FalhasValidacao: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lgpd_falhas_validacao_total",
			Help: "Total number of submissions rejected by validation",
		}),
		ColisoesNumeroTermo: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lgpd_colisoes_numero_termo_total",
			Help: "Total number of termo number collisions that triggered a regeneration",
		}),
		CriacaoDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lgpd_criacao_termo_duration_seconds",
			Help:    "Duration of the full consent creation flow",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

func (m *Metrics) IncrementTermosCriados() {
	m.TermosCriados.Inc()
}

func (m *Metrics) IncrementFalhasValidacao() {
	m.FalhasValidacao.Inc()
}

func (m *Metrics) IncrementColisoesNumeroTermo() {
	m.ColisoesNumeroTermo.Inc()
}

func (m *Metrics) ObserveCriacao(start time.Time) {
	m.CriacaoDuration.Observe(time.Since(start).Seconds())
}
