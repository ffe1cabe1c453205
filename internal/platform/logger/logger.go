// Package logger es el log del panel: una línea por entrada, en texto o JSON,
// con campos fijos (app, component) que se acumulan con With.
package logger

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = [...]string{Debug: "debug", Info: "info", Warn: "warn", Error: "error"}

// ParseLevel acepta el valor de LOG_LEVEL; cualquier otra cosa es info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	}
	return Info
}

func (l Level) String() string {
	if l < Debug || int(l) >= len(levelNames) {
		return "info"
	}
	return levelNames[l]
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Out por defecto es os.Stderr: stdout queda para la salida del CLI.
	Out io.Writer
}

// sink es lo que comparten un logger y sus derivados de With.
type sink struct {
	mu  sync.Mutex
	out io.Writer
}

type lineLogger struct {
	sink   *sink
	level  Level
	format Format
	fields map[string]any
	now    func() time.Time
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	fields := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		fields["app"] = app
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	return &lineLogger{
		sink:   &sink{out: out},
		level:  opts.Level,
		format: format,
		fields: fields,
		now:    time.Now,
	}
}

// Nop descarta todo.
func Nop() Logger {
	return New(Options{Level: Error + 1, Out: io.Discard})
}

func (l *lineLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	child := *l
	child.fields = merge(l.fields, fields)
	return &child
}

func (l *lineLogger) Debug(msg string, fields map[string]any) {
	l.write(Debug, msg, fields)
}

func (l *lineLogger) Info(msg string, fields map[string]any) {
	l.write(Info, msg, fields)
}

func (l *lineLogger) Warn(msg string, fields map[string]any) {
	l.write(Warn, msg, fields)
}

func (l *lineLogger) Error(msg string, fields map[string]any) {
	l.write(Error, msg, fields)
}

func (l *lineLogger) write(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}
	ts := l.now().UTC().Format(time.RFC3339Nano)
	all := merge(l.fields, fields)

	var line []byte
	if l.format == FormatJSON {
		all["ts"], all["level"], all["msg"] = ts, lvl.String(), msg
		line, _ = json.Marshal(all)
	} else {
		line = []byte(ts + " " + strings.ToUpper(lvl.String()) + " " + strconv.Quote(msg) + textFields(all))
	}
	line = append(line, '\n')

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = l.sink.out.Write(line)
}

// merge copia base y agrega extra; los errores se guardan como texto.
func merge(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		out[k] = v
	}
	return out
}

func textFields(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(textValue(m[k]))
	}
	return b.String()
}

func textValue(v any) string {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case nil:
		return "<nil>"
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return strconv.Quote(err.Error())
		}
		s = string(b)
		if !strings.ContainsAny(s, " \t\n\"") {
			return s
		}
		return strconv.Quote(s)
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
