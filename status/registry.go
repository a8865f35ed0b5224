// Package status collects run counters (deaths, bounces, tick rate) shown on the status line.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the game loop
const (
	KeyDeaths      = "deaths"
	KeyBounces     = "bounces"
	KeyCheckpoints = "checkpoints"
	KeyThrows      = "throws"
	KeyTickRate    = "hz"
	KeySpeed       = "speed"
)

// Registry is the central metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Inc adds one to an integer counter
func (r *Registry) Inc(key string) {
	r.Ints.Get(key).Add(1)
}

// SetFloat stores a gauge value
func (r *Registry) SetFloat(key string, v float64) {
	r.Floats.Get(key).Set(v)
}

// Summary renders all metrics as "key:value" pairs, integers first, each group sorted
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s:%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s:%.0f", key, v.Get()))
	})
	return strings.Join(parts, " ")
}
