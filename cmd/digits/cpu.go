package main

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
	"go.uber.org/zap"
)

// cpuFields describes the host for the training start log line.
func cpuFields() []zap.Field {
	return []zap.Field{
		zap.String("cpu", cpuid.CPU.BrandName),
		zap.Int("physical_cores", cpuid.CPU.PhysicalCores),
		zap.Int("logical_cores", cpuid.CPU.LogicalCores),
		zap.Bool("avx2", cpuid.CPU.Supports(cpuid.AVX2)),
		zap.Bool("avx512", cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ)),
	}
}

func cpuSummary() string {
	return fmt.Sprintf("%s (%d cores, avx2=%t)", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, cpuid.CPU.Supports(cpuid.AVX2))
}
