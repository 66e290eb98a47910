package workers

import (
	"context"
	"log/slog"
	"os"
	"time"
	"warehouse-portal/metrics"

	"github.com/shirou/gopsutil/process"
)

// ProcessStatsWorker samples memory and CPU of the portal process and
// publishes them as gauges.
type ProcessStatsWorker struct {
	log      *slog.Logger
	interval time.Duration
}

func NewProcessStatsWorker(log *slog.Logger, interval time.Duration) *ProcessStatsWorker {
	return &ProcessStatsWorker{log: log, interval: interval}
}

func (w *ProcessStatsWorker) Name() string {
	return "ProcessStats"
}

func (w *ProcessStatsWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	w.sample(p)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.sample(p)
		}
	}
}

// sample keeps the previous gauge values when the OS refuses a reading.
func (w *ProcessStatsWorker) sample(p *process.Process) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		w.log.Warn("Failed to read process memory", "error", err)
		return
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		w.log.Warn("Failed to read process cpu", "error", err)
		return
	}
	metrics.PortalRSSBytes.Set(float64(memInfo.RSS))
	metrics.PortalCPUPercent.Set(cpuPercent)
	w.log.Debug("Process stats sampled", "rss", memInfo.RSS, "cpu", cpuPercent)
}
