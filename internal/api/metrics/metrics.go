// Package metrics defines all custom Prometheus metrics for the Q&A API.
// It is the single source of truth for metric names, labels, and help
// strings; everything is registered with the default registry at init time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "qa"

// QuestionsCreatedTotal counts new questions by authoring source.
// Label:
//   - source: "user" (submission) or "admin" (pre-approved admin content)
var QuestionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "questions_created_total",
		Help:      "Total number of questions created, by authoring source.",
	},
	[]string{"source"},
)

// QuestionsAnsweredTotal counts admin answers (each one auto-approves).
var QuestionsAnsweredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "questions_answered_total",
		Help:      "Total number of questions answered and approved by admins.",
	},
)

// QuestionsRejectedTotal counts admin rejections.
var QuestionsRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "questions_rejected_total",
		Help:      "Total number of questions rejected by admins.",
	},
)

// QuestionsDeletedTotal counts hard deletes.
var QuestionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "questions_deleted_total",
		Help:      "Total number of questions hard-deleted by admins.",
	},
)

// CounterIncrementsTotal counts view/helpful increments that resolved a
// question.
// Label:
//   - kind: "views" or "helpful"
var CounterIncrementsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "counter_increments_total",
		Help:      "Total number of view/helpful counter increments applied.",
	},
	[]string{"kind"},
)

// CacheLookupsTotal counts aggregate-cache decisions.
// Label:
//   - result: "hit" (served from cache) or "miss" (recomputed)
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of aggregate cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// WebhookEventsTotal counts identity-provider webhook deliveries.
// Label:
//   - result: "ok" or "error"
var WebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Total number of identity-provider webhook deliveries received.",
	},
	[]string{"result"},
)
