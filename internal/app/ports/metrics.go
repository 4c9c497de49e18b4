package ports

import "gridcourier/internal/domain/delivery"

type RunMetrics interface {
	RecordRun(algorithm string, m delivery.Metrics)
	RecordInvalidRequest()
}
