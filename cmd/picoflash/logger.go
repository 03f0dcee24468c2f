package main

import "github.com/golang/glog"

// glogLogger adapts glog to the bootsel.Logger interface.
type glogLogger struct{}

func (glogLogger) Debug(msg string, keysAndValues ...interface{}) {
	if glog.V(1) {
		glog.InfoDepth(1, append([]interface{}{msg}, keysAndValues...)...)
	}
}

func (glogLogger) Info(msg string, keysAndValues ...interface{}) {
	glog.InfoDepth(1, append([]interface{}{msg}, keysAndValues...)...)
}

func (glogLogger) Error(msg string, keysAndValues ...interface{}) {
	glog.ErrorDepth(1, append([]interface{}{msg}, keysAndValues...)...)
}
