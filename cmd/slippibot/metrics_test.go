package main

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	frames := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "frames_total",
		Help: "frames by port and menu",
	}, []string{"port", "menu"})
	depth := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "inbox_depth",
		Help: "queued packets",
	})
	reg.MustRegister(frames, depth)

	frames.WithLabelValues("1", "css").Add(3)
	depth.Set(7)

	var out bytes.Buffer
	require.NoError(t, printStats(&out, reg))

	assert.Equal(t,
		"frames_total{menu=\"css\",port=\"1\"} 3\n"+
			"inbox_depth 7\n",
		out.String())
}
