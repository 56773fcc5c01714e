package stats

import "os"

// Aggregator resolves the configured service list against a Provider once
// per tick. Results keep config order so the services table stays stable.
type Aggregator struct {
	provider Provider
	services []ServiceSpec
}

// NewAggregator creates an aggregator for a fixed service list.
func NewAggregator(provider Provider, services []ServiceSpec) *Aggregator {
	return &Aggregator{provider: provider, services: services}
}

// Collect samples every configured service. A service whose process cannot
// be located or sampled yields Running=false, never an error.
func (a *Aggregator) Collect() []ServiceStatus {
	out := make([]ServiceStatus, 0, len(a.services))
	for _, spec := range a.services {
		out = append(out, a.collectOne(spec))
	}
	return out
}

func (a *Aggregator) collectOne(spec ServiceSpec) ServiceStatus {
	status := ServiceStatus{Name: spec.Name}

	pid := spec.PID
	if pid <= 0 {
		var ok bool
		pid, ok = a.provider.FindPIDByPattern(spec.Pattern)
		if !ok {
			return status
		}
	}

	sample, ok := a.provider.SampleByPID(pid)
	if !ok {
		return status
	}

	status.Sample = sample
	status.Running = true
	return status
}

// System returns the current system-wide sample, zero when unknown.
func (a *Aggregator) System() SystemSample {
	return a.provider.System()
}

// ProbeDB stats the database file without opening it. Any error reads as
// "does not exist".
func ProbeDB(path string) DBStats {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return DBStats{}
	}
	return DBStats{Exists: true, SizeBytes: info.Size()}
}
