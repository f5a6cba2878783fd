package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	FieldEditsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_order_edits_total",
		Help: "Total number of order field edits accepted.",
	})

	StatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pedidos_status_changes_total",
		Help: "Total number of status change requests, by requested status.",
	},
		[]string{"status"},
	)

	ExportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_csv_exports_total",
		Help: "Total number of CSV exports served.",
	})

	LoginFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_login_failures_total",
		Help: "Total number of rejected login attempts.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pedidos_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
