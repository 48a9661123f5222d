package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gack_logins_total",
			Help: "Total login attempts",
		},
		[]string{"status"},
	)
	Scans = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gack_scans_total",
			Help: "Total scan-code submissions",
		},
		[]string{"status"},
	)
	Unlocks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gack_unlocks_total",
			Help: "Total keyword submissions",
		},
		[]string{"status"},
	)
	CashoutRedemptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gack_cashout_redemptions_total",
			Help: "Total cashout redemption attempts",
		},
		[]string{"status"},
	)
)

func Register() {
	prometheus.MustRegister(Logins, Scans, Unlocks, CashoutRedemptions)
}
