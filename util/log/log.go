package log

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

/*
log implements context-based logging on top of the slog structured logging
package. All logging in objstore should go through these functions. The point
is AddTags: a caller can attach key-value pairs to a context once and have
them appear on every descendent logging call, which we use to tag everything
belonging to one CLI run or one pipeline operation.

There are "f" and "w" versions of each level. The "f" version takes a format
string and arguments, the "w" version an even-length list of key-value pairs.
*/

////////////////////////////////////////////////////////////////////////////////

type contextKey int

const (
	logTagKey contextKey = iota
)

// AddTags adds key-value pairs to the log context.
func AddTags(ctx context.Context, kvs ...any) context.Context {
	if len(kvs)%2 != 0 {
		panic("log: AddTags requires an even number of arguments")
	}
	tags := append([]any{}, fromContext(ctx)...)
	return context.WithValue(ctx, logTagKey, append(tags, kvs...))
}

func fromContext(ctx context.Context) []any {
	tags, _ := ctx.Value(logTagKey).([]any)
	return tags
}

// emit builds a record with the supplied key-value pairs followed by the
// context tags, and hands it to the default handler. The caller is two
// frames up from here.
func emit(ctx context.Context, level slog.Level, msg string, keyvals []any) {
	handler := slog.Default().Handler()
	if !handler.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	addPairs(&r, keyvals)
	addPairs(&r, fromContext(ctx))
	if err := handler.Handle(ctx, r); err != nil {
		slog.ErrorContext(ctx, "error handling log record", "error", err)
	}
}

func addPairs(r *slog.Record, kvs []any) {
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			panic("log: invalid log key")
		}
		r.Add(key, kvs[i+1])
	}
}

// Infof logs a formatted message with any context tags.
func Infof(ctx context.Context, format string, args ...any) {
	emit(ctx, slog.LevelInfo, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted warning with any context tags.
func Warnf(ctx context.Context, format string, args ...any) {
	emit(ctx, slog.LevelWarn, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted error with any context tags.
func Errorf(ctx context.Context, format string, args ...any) {
	emit(ctx, slog.LevelError, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a formatted debug message with any context tags.
func Debugf(ctx context.Context, format string, args ...any) {
	emit(ctx, slog.LevelDebug, fmt.Sprintf(format, args...), nil)
}

// Infow logs a message with key-value pairs and any context tags.
func Infow(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelInfo, msg, keyvals)
}

// Warnw logs a warning with key-value pairs and any context tags.
func Warnw(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelWarn, msg, keyvals)
}

// Errorw logs an error with key-value pairs and any context tags.
func Errorw(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelError, msg, keyvals)
}

// Debugw logs a debug message with key-value pairs and any context tags.
func Debugw(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelDebug, msg, keyvals)
}
