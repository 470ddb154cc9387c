package app

import (
	"errors"
	"net"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgconfig"
	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkguid"
)

var defaults = map[string]any{
	"server.address.http":    ":8080",
	"server.max_body_bytes":   1 << 20,
	"log.level":              "",
	"correlation.generator":  pkguid.KindUUID,
	"ratelimit.rps":          50,
	"ratelimit.burst":        100,
	"modules.logapi.enabled": true,
	"tz":                     "UTC",
}

type settings struct {
	Address   string
	LogLevel  string
	Generator string
	RPS       float64
	Burst     int64
	LogAPI    bool
	TZ        string
}

func loadSettings(cfg pkgconfig.Config) settings {
	return settings{
		Address:   cfg.GetString("server.address.http"),
		LogLevel:  cfg.GetString("log.level"),
		Generator: cfg.GetString("correlation.generator"),
		RPS:       cfg.GetFloat("ratelimit.rps"),
		Burst:     cfg.GetInt("ratelimit.burst"),
		LogAPI:    cfg.GetBool("modules.logapi.enabled"),
		TZ:        cfg.GetString("tz"),
	}
}

// Validate checks the values the service cannot start without. The log level
// is not checked here: an invalid one is reported and ignored.
func (s settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address,
			validation.Required,
			validation.By(validateHostPort),
		),
		validation.Field(&s.Generator,
			validation.In(pkguid.KindUUID, pkguid.KindSnowflake),
		),
		validation.Field(&s.RPS, validation.Min(0.0)),
		validation.Field(&s.Burst, validation.Min(int64(0))),
	)
}

func validateHostPort(value any) error {
	addr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return errors.New("must be in host:port form")
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return errors.New("port must be between 0 and 65535")
	}

	return nil
}
