package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a no-op logger unless verbose is set, in which case debug
// output goes to w in zap's development console format.
func newLogger(verbose bool, w io.Writer) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zapcore.DebugLevel)
	return zap.New(core, zap.Development()), nil
}
