// Package observability tracks live counters of the chat session plus
// process-level resource usage for the debug surface.
package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/shirou/gopsutil/process"
)

// ChatStats is a point-in-time snapshot for the inspection dashboard.
type ChatStats struct {
	ChannelsOpened    uint64  `json:"channels_opened"`
	MessagesSent      uint64  `json:"messages_sent"`
	BlankSendsIgnored uint64  `json:"blank_sends_ignored"`
	CensoredMessages  uint64  `json:"censored_messages"`
	SearchesRun       uint64  `json:"searches_run"`
	CPUPercent        float64 `json:"cpu_percent"`
	RSSMb             uint64  `json:"rss_mb"`
	AllocMemMb        uint64  `json:"alloc_mem_mb"`
	NumGC             uint32  `json:"num_gc"`
}

type Monitor struct {
	log  *slog.Logger
	proc *process.Process

	channelsOpened    atomic.Uint64
	messagesSent      atomic.Uint64
	blankSendsIgnored atomic.Uint64
	censoredMessages  atomic.Uint64
	searchesRun       atomic.Uint64
}

func NewMonitor(log *slog.Logger) *Monitor {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process metrics unavailable", "err", err)
		proc = nil
	}
	return &Monitor{log: log, proc: proc}
}

func (m *Monitor) IncrChannelsOpened()    { m.channelsOpened.Add(1) }
func (m *Monitor) IncrMessagesSent()      { m.messagesSent.Add(1) }
func (m *Monitor) IncrBlankSendsIgnored() { m.blankSendsIgnored.Add(1) }
func (m *Monitor) IncrCensoredMessages()  { m.censoredMessages.Add(1) }
func (m *Monitor) IncrSearchesRun()       { m.searchesRun.Add(1) }

// Snapshot merges the counters with Go runtime and OS process metrics.
func (m *Monitor) Snapshot() ChatStats {
	stats := ChatStats{
		ChannelsOpened:    m.channelsOpened.Load(),
		MessagesSent:      m.messagesSent.Load(),
		BlankSendsIgnored: m.blankSendsIgnored.Load(),
		CensoredMessages:  m.censoredMessages.Load(),
		SearchesRun:       m.searchesRun.Load(),
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats.AllocMemMb = mem.Alloc / 1024 / 1024
	stats.NumGC = mem.NumGC

	if m.proc != nil {
		if cpu, err := m.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
		if info, err := m.proc.MemoryInfo(); err == nil {
			stats.RSSMb = info.RSS / 1024 / 1024
		}
	}
	return stats
}

// StatsMap adapts a snapshot to the debug server's provider contract.
func (m *Monitor) StatsMap() map[string]any {
	stats := m.Snapshot()
	return map[string]any{
		"Channels opened":     stats.ChannelsOpened,
		"Messages sent":       stats.MessagesSent,
		"Blank sends ignored": stats.BlankSendsIgnored,
		"Censored messages":   stats.CensoredMessages,
		"Searches run":        stats.SearchesRun,
		"CPU %":               stats.CPUPercent,
		"RSS MB":              stats.RSSMb,
		"Alloc MB":            stats.AllocMemMb,
		"GC cycles":           stats.NumGC,
	}
}
