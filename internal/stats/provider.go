// Package stats samples process and system resource usage for the dashboard.
//
// Every provider call degrades to an explicit "absent" or "unknown" value
// instead of returning an error: a process that has exited, a PID that
// cannot be read, or a failed system query are all normal states for a
// monitor and must never unwind the event loop.
package stats

import (
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Provider answers point-in-time resource queries. Implementations are
// synchronous; the event loop accepts their latency as part of the tick.
type Provider interface {
	// SampleByPID returns a sample for the process, or ok=false if the
	// process is gone or cannot be read.
	SampleByPID(pid int32) (ProcessSample, bool)

	// FindPIDByPattern returns the first PID whose command line contains
	// pattern, or ok=false if none matches.
	FindPIDByPattern(pattern string) (int32, bool)

	// System returns a system-wide sample; the zero value means unknown.
	System() SystemSample
}

// gopsutilProvider implements Provider on top of gopsutil. It keeps process
// handles between calls so CPUPercent is measured against the previous
// sample rather than process start.
type gopsutilProvider struct {
	procs map[int32]*process.Process
}

// NewProvider returns the default local-host provider.
func NewProvider() Provider {
	return &gopsutilProvider{procs: make(map[int32]*process.Process)}
}

func (p *gopsutilProvider) SampleByPID(pid int32) (ProcessSample, bool) {
	if pid <= 0 {
		return ProcessSample{}, false
	}

	proc, ok := p.procs[pid]
	if !ok {
		var err error
		proc, err = process.NewProcess(pid)
		if err != nil {
			return ProcessSample{}, false
		}
		p.procs[pid] = proc
	}

	running, err := proc.IsRunning()
	if err != nil || !running {
		delete(p.procs, pid)
		return ProcessSample{}, false
	}

	cpuPct, err := proc.CPUPercent()
	if err != nil {
		delete(p.procs, pid)
		return ProcessSample{}, false
	}
	memPct, err := proc.MemoryPercent()
	if err != nil {
		return ProcessSample{}, false
	}
	memInfo, err := proc.MemoryInfo()
	if err != nil || memInfo == nil {
		return ProcessSample{}, false
	}

	return ProcessSample{
		CPUPercent: cpuPct,
		MemPercent: float64(memPct),
		ResidentMB: float64(memInfo.RSS) / (1024 * 1024),
	}, true
}

func (p *gopsutilProvider) FindPIDByPattern(pattern string) (int32, bool) {
	if pattern == "" {
		return 0, false
	}

	procs, err := process.Processes()
	if err != nil {
		return 0, false
	}

	self := int32(os.Getpid())
	for _, proc := range procs {
		if proc.Pid == self {
			continue
		}
		cmdline, err := proc.Cmdline()
		if err != nil || cmdline == "" {
			continue
		}
		if strings.Contains(cmdline, pattern) {
			return proc.Pid, true
		}
	}
	return 0, false
}

func (p *gopsutilProvider) System() SystemSample {
	vm, err := mem.VirtualMemory()
	if err != nil || vm == nil || vm.Total == 0 {
		return SystemSample{}
	}

	// Interval 0 measures against the previous call, so the first tick
	// reads 0% and later ticks are true deltas.
	cpuPct := 0.0
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		cpuPct = pcts[0]
	}

	return SystemSample{
		CPUPercent: cpuPct,
		MemUsedMB:  int(vm.Used / (1024 * 1024)),
		MemTotalMB: int(vm.Total / (1024 * 1024)),
	}
}
