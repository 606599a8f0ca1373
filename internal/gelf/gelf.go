package gelf

import (
	"encoding/json"
	"net"
	"os"
	"strings"
	"time"
)

// Writer sends GELF messages over UDP and implements io.Writer so it can sit
// behind a zapcore.WriteSyncer.
type Writer struct {
	conn     net.Conn
	hostname string
}

// New creates a GELF UDP writer connected to addr (e.g. "172.17.0.1:12201").
func New(addr string) (*Writer, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, err
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "booking-site"
	}

	return &Writer{conn: conn, hostname: hostname}, nil
}

// Write implements io.Writer. Each call sends one GELF message whose
// short_message is the log line with the trailing newline stripped.
func (w *Writer) Write(p []byte) (int, error) {
	short := strings.TrimRight(string(p), "\n")

	level := 6 // Informational
	if strings.Contains(short, `"ERROR"`) || strings.Contains(short, `"FATAL"`) {
		level = 3 // Error
	} else if strings.Contains(short, `"WARN"`) {
		level = 4 // Warning
	}

	msg := map[string]interface{}{
		"version":       "1.1",
		"host":          w.hostname,
		"short_message": short,
		"timestamp":     float64(time.Now().UnixNano()) / 1e9,
		"level":         level,
		"_service":      "booking-site",
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return len(p), nil
	}
	// Best effort: a dropped UDP datagram must never fail the logger.
	w.conn.Write(data)
	return len(p), nil
}

// Close releases the UDP socket.
func (w *Writer) Close() error {
	return w.conn.Close()
}
