package logger

import (
	"time"

	"go.uber.org/zap"
)

// Campos estándar del servicio. Mantener los nombres estables: los dashboards
// filtran por estos keys.

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }

func DurationMs(v time.Duration) zap.Field {
	return zap.Int64("duration_ms", v.Milliseconds())
}

func Addr(v string) zap.Field      { return zap.String("addr", v) }
func UserID(v string) zap.Field    { return zap.String("user_id", v) }
func Username(v string) zap.Field  { return zap.String("username", v) }
func TaskID(v string) zap.Field    { return zap.String("task_id", v) }
func Component(v string) zap.Field { return zap.String("component", v) }
func Op(v string) zap.Field        { return zap.String("op", v) }

func DSN(v string) zap.Field { return zap.String("dsn", v) }

func Int(k string, v int) zap.Field { return zap.Int(k, v) }
func Err(err error) zap.Field       { return zap.Error(err) }
