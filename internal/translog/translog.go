// Package translog records the conversation transcript: every message
// crossing the UI/agent boundary is appended as one NDJSON line to a
// per-run file, optionally mirrored into a single rotated global file,
// and kept in a bounded in-memory ring for the transcripts endpoint.
//
// Logging is asynchronous behind a bounded queue so a slow disk never
// stalls a chat submission; when the queue is full events are dropped,
// not blocked on.
package translog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Channels a transcript event can originate from.
const (
	ChannelHTTP = "chat_http"
	ChannelWS   = "chat_ws"
)

// Directions relative to the agent: outbound carries user text toward it,
// inbound carries its answer back to the UI.
const (
	DirectionOutbound = "outbound"
	DirectionInbound  = "inbound"
)

// Event types.
const (
	EventUserMessage   = "user_message"
	EventAgentResponse = "agent_response"
	EventBusyRejected  = "busy_rejected"
)

// Event is one transcript record.
type Event struct {
	Timestamp  string         `json:"ts"`
	RunID      string         `json:"run_id,omitempty"`
	Channel    string         `json:"channel"`
	Direction  string         `json:"direction"`
	EventType  string         `json:"event_type"`
	ContentRaw string         `json:"content_raw"`
	Content    string         `json:"content"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// Config controls where transcript events are written.
type Config struct {
	// Enabled turns per-run NDJSON files under Dir on.
	Enabled bool
	// Dir is the directory holding one <run_id>.ndjson file per run.
	Dir string
	// GlobalEnabled mirrors every event into one rotated file.
	GlobalEnabled bool
	// GlobalPath is the location of the global mirror.
	GlobalPath string
	// QueueSize bounds the async write queue.
	QueueSize int
}

// Logger writes transcript events. The zero value is not usable; construct
// with New.
type Logger struct {
	cfg    Config
	logger *slog.Logger
	ring   *Ring

	queue     chan Event
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

const defaultRingSize = 256

// New validates cfg, prepares the target directories, and starts the
// writer goroutine when any file sink is enabled. The in-memory ring is
// always active so recent events can be served even with file logging
// turned off.
func New(cfg Config, logger *slog.Logger) (*Logger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}

	l := &Logger{
		cfg:    cfg,
		logger: logger,
		ring:   NewRing(defaultRingSize),
	}

	if !cfg.Enabled && !cfg.GlobalEnabled {
		return l, nil
	}

	if cfg.Enabled {
		if cfg.Dir == "" {
			return nil, fmt.Errorf("translog: directory is required when enabled")
		}
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return nil, fmt.Errorf("translog: create transcript directory: %w", err)
		}
	}

	var global *lumberjack.Logger
	if cfg.GlobalEnabled {
		if cfg.GlobalPath == "" {
			return nil, fmt.Errorf("translog: global path is required when global logging is enabled")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.GlobalPath), 0755); err != nil {
			return nil, fmt.Errorf("translog: create global transcript directory: %w", err)
		}
		global = &lumberjack.Logger{
			Filename:   cfg.GlobalPath,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
	}

	l.queue = make(chan Event, cfg.QueueSize)
	l.done = make(chan struct{})
	go l.writeLoop(global)

	return l, nil
}

// Log records one event. It never blocks: with file sinks enabled and the
// queue full, the event is dropped (the ring still keeps it).
func (l *Logger) Log(event Event) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if event.Content == "" {
		event.Content = cleanForReadability(event.ContentRaw)
	}

	l.ring.Add(event)

	if l.queue == nil {
		return
	}
	select {
	case l.queue <- event:
	default:
		l.logger.Warn("Transcript event dropped, queue full", "run_id", event.RunID, "event_type", event.EventType)
	}
}

// Recent returns up to n of the most recent events, newest first.
func (l *Logger) Recent(n int) []Event {
	return l.ring.Recent(n)
}

// Close drains the queue, flushes the sinks, and stops the writer. Safe to
// call more than once.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		if l.queue == nil {
			return
		}
		close(l.queue)
		<-l.done
	})
	return l.closeErr
}

func (l *Logger) writeLoop(global *lumberjack.Logger) {
	defer close(l.done)

	for event := range l.queue {
		line, err := json.Marshal(event)
		if err != nil {
			l.logger.Warn("Failed to marshal transcript event", "error", err)
			continue
		}
		line = append(line, '\n')

		if l.cfg.Enabled && event.RunID != "" {
			if err := appendLine(filepath.Join(l.cfg.Dir, event.RunID+".ndjson"), line); err != nil {
				l.logger.Warn("Failed to write transcript event", "run_id", event.RunID, "error", err)
			}
		}
		if global != nil {
			if _, err := global.Write(line); err != nil {
				l.logger.Warn("Failed to write global transcript event", "error", err)
			}
		}
	}

	if global != nil {
		l.closeErr = global.Close()
	}
}

// appendLine opens the run file for append, writes one line, and closes
// it. Runs produce only a handful of events, so a handle cache is not
// worth keeping open across the process lifetime.
func appendLine(path string, line []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

var ansiEscape = regexp.MustCompile(`\x1b(\[[0-9;?]*[a-zA-Z]|\][^\x07\x1b]*(\x07|\x1b\\)|[()][A-Z0-9])`)

// cleanForReadability strips ANSI escape sequences and non-printing
// control characters so transcript lines stay greppable.
func cleanForReadability(raw string) string {
	clean := ansiEscape.ReplaceAllString(raw, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, clean)
}
