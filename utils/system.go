package utils

import (
	"fmt"
	"runtime"
)

// MemUsage is a snapshot of the runtime allocator counters, sizes in MiB.
type MemUsage struct {
	Alloc, TotalAlloc, Sys uint64
	NumGC                  uint32
}

func GetMemUsage() MemUsage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return MemUsage{
		Alloc:      bToMb(m.Alloc),
		TotalAlloc: bToMb(m.TotalAlloc),
		Sys:        bToMb(m.Sys),
		NumGC:      m.NumGC,
	}
}

func (mu MemUsage) String() string {
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		mu.Alloc, mu.TotalAlloc, mu.Sys, mu.NumGC)
}
