package dxfrw

import (
	"io"
	"log"
	"sync"
)

// LogWriters 三个日志流的输出
type LogWriters struct {
	Ops   io.Writer // 需要处理的警告：未解析的图像、写出失败、块括号不匹配
	Diag  io.Writer // 被丢弃的记录、跳过的图层与线型
	Trace io.Writer // 逐条记录的转换
}

var (
	logMu       sync.RWMutex
	opsLogger   *log.Logger
	diagLogger  *log.Logger
	traceLogger *log.Logger
)

// SetLogWriters 一次配置全部日志流，传 nil 关闭对应的流
func SetLogWriters(w LogWriters) {
	logMu.Lock()
	defer logMu.Unlock()
	opsLogger = newLogger("[dxfrw] ", w.Ops)
	diagLogger = newLogger("[dxfrw] ", w.Diag)
	traceLogger = newLogger("[dxfrw] ", w.Trace)
}

func newLogger(prefix string, w io.Writer) *log.Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, log.LstdFlags|log.Lmicroseconds)
}

func Opsf(format string, args ...interface{}) {
	logMu.RLock()
	l := opsLogger
	logMu.RUnlock()
	if l != nil {
		l.Printf(format, args...)
	}
}

func Diagf(format string, args ...interface{}) {
	logMu.RLock()
	l := diagLogger
	logMu.RUnlock()
	if l != nil {
		l.Printf(format, args...)
	}
}

func Tracef(format string, args ...interface{}) {
	logMu.RLock()
	l := traceLogger
	logMu.RUnlock()
	if l != nil {
		l.Printf(format, args...)
	}
}
