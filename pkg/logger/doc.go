// Package logger builds configured log/slog loggers with functional
// options: level, JSON or text output, destination, static attributes,
// and development/production presets.
//
//	log := logger.New(
//	    logger.WithProduction("fundkit"),
//	    logger.WithAttr(slog.String("component", "funding")),
//	)
//	logger.SetAsDefault(log)
package logger
