// Package sysmon samples host-wide CPU and memory usage so benchmark runs can
// be logged alongside the load of the machine they ran on.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/agbru/fibserve/internal/logging"
)

// Stats holds a single snapshot of host resource usage.
type Stats struct {
	LogicalCPUs int     // 0 if unknown
	CPUPercent  float64 // 0.0 .. 100.0
	MemPercent  float64 // 0.0 .. 100.0
}

// Sample collects a single host snapshot. CPU uses interval=0 (delta since
// the previous call, 0 on the first). Unreadable values stay zero.
func Sample() Stats {
	var s Stats
	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCPUs = n
	}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Fields renders the snapshot as log fields.
func (s Stats) Fields() []logging.Field {
	return []logging.Field{
		logging.Int("host_cpus", s.LogicalCPUs),
		logging.Float64("host_cpu_percent", s.CPUPercent),
		logging.Float64("host_mem_percent", s.MemPercent),
	}
}
