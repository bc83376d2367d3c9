package hui

import (
	"time"

	"github.com/leandrodaf/hui/sdk/contracts"
)

// nopLogger discards everything. It stands in when a caller passes no
// logger, keeping the decode path free of nil checks.
type nopLogger struct{}

func (nopLogger) Info(string, ...contracts.Field)  {}
func (nopLogger) Error(string, ...contracts.Field) {}
func (nopLogger) Debug(string, ...contracts.Field) {}
func (nopLogger) Warn(string, ...contracts.Field)  {}
func (nopLogger) Fatal(string, ...contracts.Field) {}

func (nopLogger) Field() contracts.Field { return nopField{} }

func (nopLogger) SetLevel(contracts.LogLevel)                        {}
func (nopLogger) SetDestination(contracts.LogDestination, ...string) {}

type nopField struct{}

func (f nopField) Bool(string, bool) contracts.Field       { return f }
func (f nopField) Int(string, int) contracts.Field         { return f }
func (f nopField) Float64(string, float64) contracts.Field { return f }
func (f nopField) String(string, string) contracts.Field   { return f }
func (f nopField) Time(string, time.Time) contracts.Field  { return f }
func (f nopField) Int64(string, int64) contracts.Field     { return f }
func (f nopField) Error(string, error) contracts.Field     { return f }
func (f nopField) Uint64(string, uint64) contracts.Field   { return f }
func (f nopField) Uint8(string, uint8) contracts.Field     { return f }
func (f nopField) Uint16(string, uint16) contracts.Field   { return f }
