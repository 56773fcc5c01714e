package stats

// ProcessSample is a point-in-time resource snapshot for one process.
type ProcessSample struct {
	CPUPercent float64
	MemPercent float64
	ResidentMB float64
}

// SystemSample is a point-in-time snapshot of system-wide load. A zero
// MemTotalMB marks the whole sample as unknown (query failed), which is
// distinct from zero usage.
type SystemSample struct {
	CPUPercent float64
	MemUsedMB  int
	MemTotalMB int
}

// Known reports whether the sample carries real data.
func (s SystemSample) Known() bool {
	return s.MemTotalMB > 0
}

// MemPercent returns used memory as a percentage of total, or 0 for an
// unknown sample.
func (s SystemSample) MemPercent() float64 {
	if s.MemTotalMB <= 0 {
		return 0
	}
	return float64(s.MemUsedMB) / float64(s.MemTotalMB) * 100
}

// ServiceSpec names one monitored service and how to locate its process:
// a fixed PID when known, otherwise a command-line pattern to resolve each
// tick. PID 0 with an empty pattern means the service is not tracked.
type ServiceSpec struct {
	Name    string `mapstructure:"name"`
	PID     int32  `mapstructure:"pid"`
	Pattern string `mapstructure:"pattern"`
}

// ServiceStatus is the per-tick result for one service. Running is false
// when the process could not be found or sampled; Sample is meaningless in
// that case. A down service is a normal state, not an error.
type ServiceStatus struct {
	Name    string
	Sample  ProcessSample
	Running bool
}

// DBStats describes the monitored database file. The file is only stat'd,
// never opened.
type DBStats struct {
	Exists    bool
	SizeBytes int64
}
