package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	RoundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "house_fund_rounds_total",
			Help: "Total settled rounds",
		},
		[]string{"game", "outcome"},
	)

	WageredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "house_fund_wagered_total",
			Help: "Total amount wagered",
		},
		[]string{"game"},
	)

	PaidOutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "house_fund_paid_out_total",
			Help: "Total amount paid out",
		},
		[]string{"game"},
	)

	RejectedIntents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "house_fund_rejected_intents_total",
			Help: "Player intents rejected by a game engine",
		},
		[]string{"game"},
	)

	LedgerBalance = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "house_fund_ledger_balance",
			Help: "Current player balance",
		},
	)
)

func Init() {
	prometheus.MustRegister(RoundsTotal)
	prometheus.MustRegister(WageredTotal)
	prometheus.MustRegister(PaidOutTotal)
	prometheus.MustRegister(RejectedIntents)
	prometheus.MustRegister(LedgerBalance)
}
