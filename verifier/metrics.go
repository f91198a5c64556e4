package verifier

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NethermindEth/eth-rlp-verify/eras"
)

const (
	eraLabel    = "era"
	resultLabel = "result"

	resultValid = "valid"
	eraUnknown  = "unknown"
)

type metrics struct {
	headers   *prometheus.CounterVec // era, result
	sequences *prometheus.CounterVec // result
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		headers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eth_rlp_verify_headers_total",
				Help: "Headers checked, by era and result",
			},
			[]string{eraLabel, resultLabel},
		),
		sequences: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eth_rlp_verify_sequences_total",
				Help: "Header sequences checked, by result",
			},
			[]string{resultLabel},
		),
	}
	err := errors.Join(
		reg.Register(m.headers),
		reg.Register(m.sequences),
	)
	return m, err
}

// result is "valid" for a nil error and the error code otherwise.
func result(err error) string {
	if err == nil {
		return resultValid
	}
	if code, ok := eras.CodeOf(err); ok {
		return string(code)
	}
	return "error"
}

func (m *metrics) observeHeader(era string, err error) {
	if m == nil {
		return
	}
	m.headers.WithLabelValues(era, result(err)).Inc()
}

func (m *metrics) observeSequence(err error) {
	if m == nil {
		return
	}
	m.sequences.WithLabelValues(result(err)).Inc()
}
