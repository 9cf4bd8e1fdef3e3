// Package log provides a leveled wrapper around the standard log package.
// Messages carry their level as a [level] prefix in the message itself;
// lines below the configured minimum level are dropped before writing.
package log

import (
	"bytes"
	"io"
	"log"
	"os"
	"time"
)

type Level string

const (
	LDebug = Level("debug")
	LInfo  = Level("info")
	LWarn  = Level("warn")
	LError = Level("error")
)

var DefaultLogger *log.Logger
var defaultFilter *levelFilter

func init() {
	defaultFilter = &levelFilter{
		writer: os.Stderr,
		levels: []Level{LDebug, LInfo, LWarn, LError},
	}
	defaultFilter.setMinLevel(LInfo)
	DefaultLogger = log.New(defaultFilter, "", 0)
}

type levelFilter struct {
	writer    io.Writer
	levels    []Level
	badLevels map[Level]struct{}
}

func (f *levelFilter) setMinLevel(min Level) {
	bad := make(map[Level]struct{})
	for _, level := range f.levels {
		if level == min {
			break
		}
		bad[level] = struct{}{}
	}
	f.badLevels = bad
}

func (f *levelFilter) check(line []byte) bool {
	var level Level
	x := bytes.IndexByte(line, '[')
	if x >= 0 {
		y := bytes.IndexByte(line[x:], ']')
		if y >= 0 {
			level = Level(line[x+1 : x+y])
		}
	}
	_, bad := f.badLevels[level]
	return !bad
}

func (f *levelFilter) Write(p []byte) (n int, err error) {
	if !f.check(p) {
		return 0, nil
	}
	// the log package guarantees a single line per Write
	b := bytes.Buffer{}
	b.WriteString("[" + time.Now().Format(time.RFC3339) + "] ")
	b.Write(p)
	return f.writer.Write(b.Bytes())
}

func SetMinLevel(lvl Level) {
	defaultFilter.setMinLevel(lvl)
}

func Printf(format string, v ...interface{}) {
	DefaultLogger.Printf(format, v...)
}
