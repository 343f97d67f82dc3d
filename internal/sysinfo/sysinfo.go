// Package sysinfo reports the host capacity the ambient stack tunes
// itself against: CPU topology and available memory. Adapted from
// eutils/utils.go's performance-tuning block (the nCPU/numProcs/
// cpuid.CPU.ThreadsPerCore calculation and the Mmry/Sock/Core report
// line), generalized from "how many goroutines should xtract farm
// records across" to "how many goroutines should a scan/build farm
// patterns or sequences across".
package sysinfo

import (
	"fmt"
	"io"
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// Report is a snapshot of host capacity.
type Report struct {
	LogicalCPUs    int
	ThreadsPerCore int
	PhysicalCores  int
	TotalMemoryMB  uint64
}

// Snapshot reads the current host's CPU and memory capacity.
func Snapshot() Report {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	r := Report{LogicalCPUs: n, ThreadsPerCore: cpuid.CPU.ThreadsPerCore}
	if r.ThreadsPerCore > 0 {
		r.PhysicalCores = n / r.ThreadsPerCore
	} else {
		r.PhysicalCores = n
	}
	r.TotalMemoryMB = memory.TotalMemory() / (1024 * 1024)
	return r
}

// Workers picks a goroutine-pool size for CPU-bound index builds: the
// reality check in eutils/utils.go keeps worker counts inside a modest
// band around physical core count rather than chasing logical thread
// count, since preprocessing loops (Z/KMP/BM table builds, suffix array
// sort) don't benefit past that the way I/O-bound record farms do.
func (r Report) Workers() int {
	w := r.PhysicalCores
	if w < 1 {
		w = 1
	}
	if w > r.LogicalCPUs {
		w = r.LogicalCPUs
	}
	return w
}

// Fprint writes the snapshot in eutils' "Core/Sock/Mmry" report shape.
func (r Report) Fprint(w io.Writer) {
	if r.ThreadsPerCore > 0 {
		fmt.Fprintf(w, "Core %d\n", r.PhysicalCores)
	}
	fmt.Fprintf(w, "Thrd %d\n", r.LogicalCPUs)
	fmt.Fprintf(w, "Mmry %d\n", r.TotalMemoryMB/1024)
}
