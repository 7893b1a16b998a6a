package mathmark

import (
	"errors"
	"sync"
)

// frac builds the expected fraction markup.
func frac(num, den string) string {
	return `<span class="fraction"><sup>` + num + "</sup>⁄<sub>" + den + "</sub></span>"
}

// captureLogger records Error calls.
type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	msg  string
	args []any
}

func (l *captureLogger) Error(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{msg: msg, args: args})
}

func (l *captureLogger) Entries() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}

// loggedError returns the value logged under the "error" key.
func (e logEntry) loggedError() error {
	for i := 0; i+1 < len(e.args); i += 2 {
		if e.args[i] == "error" {
			if err, ok := e.args[i+1].(error); ok {
				return err
			}
		}
	}
	return nil
}

var errStageBroken = errors.New("stage broken")
