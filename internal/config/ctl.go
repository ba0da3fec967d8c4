package config

import (
	"strings"

	"github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/config/configloader"
)

var _ configloader.Validator = (*CtlConfig)(nil)

// CtlConfig is the inventoryctl configuration.
type CtlConfig struct {
	GRPC       config.GrpcClientConfig `koanf:"grpc"`
	Resilience config.ResilienceConfig `koanf:"resilience"`
	NATS       config.NATSConfig       `koanf:"nats"`
	Subscriber config.SubscriberConfig `koanf:"subscriber"`
	Log        config.LogConfig        `koanf:"log"`
}

func CtlDefaults() map[string]any {
	return map[string]any{
		"grpc.addr":                                     "localhost:9090",
		"grpc.timeout":                                  "5s",
		"resilience.retry.maxattempts":                  3,
		"resilience.retry.initialbackoff":               "100ms",
		"resilience.circuitbreaker.consecutivefailures": 5,
		"resilience.circuitbreaker.errorratepercent":    60,
		"resilience.circuitbreaker.opentimeout":         "5s",
		"nats.url":                                      "nats://localhost:4222",
		"nats.timeout":                                  "5s",
		"subscriber.stream":                             "PRODUCTS",
		"subscriber.subject":                            "products.>",
		"subscriber.batch":                              10,
		"subscriber.timeout":                            "5s",
		"subscriber.interval":                           "1s",
		"log.level":                                     "warn",
	}
}

func (c *CtlConfig) String() string {
	var b strings.Builder
	b.WriteString(c.GRPC.String())
	b.WriteString(c.Resilience.String())
	b.WriteString(c.NATS.String())
	b.WriteString(c.Subscriber.String())
	b.WriteString(c.Log.String())
	return b.String()
}

// Validate checks every section. NATS settings are only used by the watch command
// and are validated there.
func (c *CtlConfig) Validate() error {
	for _, section := range []configloader.Validator{
		&c.GRPC,
		&c.Resilience,
		&c.Subscriber,
		&c.Log,
	} {
		if err := section.Validate(); err != nil {
			return err
		}
	}
	return nil
}
