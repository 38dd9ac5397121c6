package workers

import (
	"care-chat/contract"
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

const DefaultTelemetryInterval = 30 * time.Second

// ConversationCounter reports how many conversations are held in memory.
type ConversationCounter interface {
	Count() int
}

// Snapshot is one telemetry sample of the chat server process.
type Snapshot struct {
	At             time.Time
	RSSBytes       uint64
	CPUPercent     float64
	Status         string
	ConnectedUsers int
	Conversations  int
}

// TelemetryWorker periodically logs process and chat server gauges.
type TelemetryWorker struct {
	log           *slog.Logger
	interval      time.Duration
	registry      contract.ISessionRegistry
	conversations ConversationCounter

	mu     sync.RWMutex
	latest Snapshot
}

func NewTelemetryWorker(log *slog.Logger, interval time.Duration,
	registry contract.ISessionRegistry, conversations ConversationCounter) *TelemetryWorker {
	if interval <= 0 {
		interval = DefaultTelemetryInterval
	}
	return &TelemetryWorker{
		log:           log,
		interval:      interval,
		registry:      registry,
		conversations: conversations,
	}
}

// Run samples until ctx is done. It returns nil on cancellation so the supervisor does not restart it.
func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snapshot := w.sample(p)
			w.mu.Lock()
			w.latest = snapshot
			w.mu.Unlock()
			w.log.Info("Chat server telemetry",
				"connected_users", snapshot.ConnectedUsers,
				"conversations", snapshot.Conversations,
				"rss_bytes", snapshot.RSSBytes,
				"cpu_percent", snapshot.CPUPercent,
				"status", snapshot.Status)
		}
	}
}

// Latest returns the most recent sample, zero before the first tick.
func (w *TelemetryWorker) Latest() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest
}

func (w *TelemetryWorker) sample(p *process.Process) Snapshot {
	snapshot := Snapshot{
		At:             time.Now(),
		ConnectedUsers: w.registry.Len(),
		Conversations:  w.conversations.Count(),
	}
	rss, cpu, status, err := selfStats(p)
	if err != nil {
		w.log.Warn("Failed to collect process stats", "error", err)
		return snapshot
	}
	snapshot.RSSBytes, snapshot.CPUPercent, snapshot.Status = rss, cpu, status
	return snapshot
}

func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
