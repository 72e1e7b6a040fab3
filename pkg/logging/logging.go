package logging

import "go.uber.org/zap"

// Common structured log field names.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldType      = "type"
	FieldPort      = "port"
	FieldSignal    = "signal"
	FieldEndpoint  = "endpoint"
	FieldKey       = "key"
	FieldMovieID   = "movieId"
	FieldUser      = "user"
)

// New builds the service logger. Development mode switches to a human-readable encoder.
func New(serviceName string, development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String(FieldService, serviceName)), nil
}
