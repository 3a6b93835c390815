// Package steplog prints nested, timed progress lines for a start-up sequence:
//
//	> initialize vulkan
//	  > create instance
//	  - found VK_LAYER_KHRONOS_validation
//	  * create instance
//
// Info and OK print at the level of the innermost open step. Each line
// carries the time since Start in its elapsed field.
package steplog

import (
	"strings"
	"time"

	"github.com/loov/hrtime"
	"go.uber.org/zap"
)

const indentWidth = 2

const (
	markDown = ">"
	markOK   = "*"
	markInfo = "-"
)

// Log is a progress log. It is not safe for concurrent use.
type Log struct {
	logger *zap.Logger
	now    func() time.Duration

	start time.Duration
	depth int
}

// New returns a started Log writing to logger.
func New(logger *zap.Logger) *Log {
	l := &Log{
		logger: logger.WithOptions(zap.AddCallerSkip(2)),
		now:    hrtime.Now,
	}
	l.Start()
	return l
}

// Start resets the clock and the nesting.
func (l *Log) Start() {
	l.start = l.now()
	l.depth = -1
}

// Elapsed returns the time since Start.
func (l *Log) Elapsed() time.Duration {
	return l.now() - l.start
}

// Depth returns the current nesting level; 0 after the first Down.
func (l *Log) Depth() int {
	if l.depth < 0 {
		return 0
	}
	return l.depth
}

// Down opens a nested step and prints msg at the new level.
func (l *Log) Down(msg string, fields ...zap.Field) {
	l.depth++
	l.print(markDown, msg, fields)
}

// Up closes the current step.
func (l *Log) Up() {
	if l.depth >= 0 {
		l.depth--
	}
}

// OK reports that something at the current level succeeded.
func (l *Log) OK(msg string, fields ...zap.Field) {
	l.print(markOK, msg, fields)
}

// Info prints msg at the current level.
func (l *Log) Info(msg string, fields ...zap.Field) {
	l.print(markInfo, msg, fields)
}

// Step runs fn as a nested step named msg and reports success with OK.
// Errors are returned unchanged.
func (l *Log) Step(msg string, fn func() error) error {
	l.depth++
	l.print(markDown, msg, nil)
	defer l.Up()

	if err := fn(); err != nil {
		return err
	}
	l.print(markOK, msg, nil)
	return nil
}

// print must be called directly by an exported method so the logged caller
// is that method's caller.
func (l *Log) print(mark, msg string, fields []zap.Field) {
	line := strings.Repeat(" ", l.Depth()*indentWidth) + mark + " " + msg
	l.logger.Info(line, append(fields, zap.Duration("elapsed", l.Elapsed()))...)
}
