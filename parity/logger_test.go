package parity

import "github.com/erraggy/specparity/loader"

type recordingLogger struct {
	debug, info, warn, errs []string
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.debug = append(r.debug, msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.info = append(r.info, msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.warn = append(r.warn, msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.errs = append(r.errs, msg) }
func (r *recordingLogger) With(_ ...any) loader.Logger { return r }
