package faucet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSent   = "sent"
	statusFailed = "failed"
)

var transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "faucet",
	Name:      "transfers_total",
	Help:      "Token transfers submitted by the faucet, by token role and outcome.",
}, []string{"role", "status"})
