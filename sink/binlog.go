package sink

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/ngstokes-code/pmr-market-simulator/event"
)

// BinaryLog appends length-prefixed event records to a file: each record
// is a u32 little-endian byte count followed by the event encoding.
// Writes are serialized with a mutex, so one log may be shared by many
// simulator threads.
type BinaryLog struct {
	mu      sync.Mutex
	f       *os.File
	w       *bufio.Writer
	scratch []byte
	closed  bool
}

func OpenBinaryLog(path string) (*BinaryLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return &BinaryLog{
		f:       f,
		w:       bufio.NewWriterSize(f, 1<<20),
		scratch: make([]byte, 4, 4+64),
	}, nil
}

func (l *BinaryLog) Write(e event.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	b := e.AppendTo(l.scratch[:4])
	binary.LittleEndian.PutUint32(b[:4], uint32(len(b)-4))
	l.scratch = b[:4]
	if _, err := l.w.Write(b); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

func (l *BinaryLog) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	return l.w.Flush()
}

func (l *BinaryLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	if err := l.w.Flush(); err != nil {
		l.f.Close()
		return err
	}
	if err := l.f.Sync(); err != nil {
		l.f.Close()
		return err
	}
	return l.f.Close()
}

// ReadBinaryLog parses a log file back into events. Used by tests and
// tooling; a truncated tail record is reported as an error.
func ReadBinaryLog(path string) ([]event.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []event.Event
	for len(data) > 0 {
		if len(data) < 4 {
			return nil, fmt.Errorf("log: %d trailing bytes", len(data))
		}
		n := binary.LittleEndian.Uint32(data)
		data = data[4:]
		if uint32(len(data)) < n {
			return nil, fmt.Errorf("log: record of %d bytes with %d remaining", n, len(data))
		}
		e, consumed, err := event.Decode(data[:n])
		if err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
		if uint32(consumed) != n {
			return nil, fmt.Errorf("log: record length %d, decoded %d", n, consumed)
		}
		out = append(out, e)
		data = data[n:]
	}
	return out, nil
}
