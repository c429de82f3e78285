// Package zapwriter implements a writer.Writer that forwards records to a
// *zap.Logger.
//
// Severities are folded onto zap's levels:
//
//	emergency, alert, critical, error -> zap.ErrorLevel
//	warning                           -> zap.WarnLevel
//	notice, info                      -> zap.InfoLevel
//	debug                             -> zap.DebugLevel
//
// The original severity is kept in the "severity" field of every entry so
// that nothing is lost by the folding. The message is interpolated; the
// remaining context keys become zap fields.
//
// Basic usage:
//
//	zl, err := zapwriter.NewZap(zapwriter.Config{ServiceName: "billing"})
//	if err != nil {
//		return err
//	}
//	w := zapwriter.NewWriter(zl)
//	log := logger.New("billing", "", logger.Config{LogLevels: level.AllLevels()}, w)
//	log.Info("charged {amount}", writer.Context{"amount": 42})
package zapwriter
