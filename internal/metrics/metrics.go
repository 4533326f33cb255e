package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogBuilds tracks catalog builds by result (success, no_source, fetch_failed)
	CatalogBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acelauncher_catalog_builds_total",
		Help: "Total number of channel catalog builds",
	}, []string{"result"})

	// CatalogChannels tracks the number of channels in the last successful build
	CatalogChannels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "acelauncher_catalog_channels",
		Help: "Number of channels in the last built catalog",
	})

	// FetchErrors tracks playlist fetch failures by kind
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acelauncher_fetch_errors_total",
		Help: "Total number of playlist fetch errors",
	}, []string{"kind"})

	// FetchDuration tracks how long playlist retrieval takes
	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "acelauncher_fetch_duration_seconds",
		Help:    "Duration of playlist fetches",
		Buckets: prometheus.DefBuckets,
	}, []string{"origin"})

	// PlayerLaunches tracks external player launches by result
	PlayerLaunches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acelauncher_player_launches_total",
		Help: "Total number of external player launches",
	}, []string{"result"})

	// RegistryWrites tracks source list rewrites by operation and result
	RegistryWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acelauncher_registry_writes_total",
		Help: "Total number of source list rewrites",
	}, []string{"operation", "result"})
)

// RecordCatalogBuild increments the build counter for a result
func RecordCatalogBuild(result string) {
	CatalogBuilds.WithLabelValues(result).Inc()
}

// SetCatalogChannels sets the channel count of the current catalog
func SetCatalogChannels(count int) {
	CatalogChannels.Set(float64(count))
}

// RecordFetchError increments the fetch error counter for a kind
func RecordFetchError(kind string) {
	FetchErrors.WithLabelValues(kind).Inc()
}

// ObserveFetch records a fetch duration in seconds for an origin ("local" or "remote")
func ObserveFetch(origin string, seconds float64) {
	FetchDuration.WithLabelValues(origin).Observe(seconds)
}

// RecordPlayerLaunch increments the player launch counter for a result
func RecordPlayerLaunch(result string) {
	PlayerLaunches.WithLabelValues(result).Inc()
}

// RecordRegistryWrite increments the registry write counter
func RecordRegistryWrite(operation, result string) {
	RegistryWrites.WithLabelValues(operation, result).Inc()
}
