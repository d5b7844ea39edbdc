package system_metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"order-service/pkg/logger"
)

type SystemMetrics struct {
	log      logger.Logger
	interval time.Duration
}

func New(log logger.Logger, interval time.Duration) *SystemMetrics {
	return &SystemMetrics{
		log:      log,
		interval: interval,
	}
}

func (t *SystemMetrics) TTL() time.Duration {
	return t.interval
}

func (t *SystemMetrics) Info() string {
	return "system metrics collector"
}

func (t *SystemMetrics) Do(ctx context.Context) error {
	cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	ApplicationMemoryUsage.Set(float64(m.Alloc))
	return nil
}
