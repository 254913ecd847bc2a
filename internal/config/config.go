package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/grandpalace/booking/internal/logger"
)

// Config carries the hotel properties. Every field has a built-in default;
// a missing or malformed properties file is never fatal, the defaults win.
type Config struct {
	HotelName     string  `json:"hotel_name"`
	StandardRate  float64 `json:"standard_rate"`
	SuiteRate     float64 `json:"suite_rate"`
	VIPDiscount   float64 `json:"vip_discount"`
	CustomersFile string  `json:"customers_file"`
	RoomsFile     string  `json:"rooms_file"`
	Host          string  `json:"host"`
	Port          string  `json:"port"`
}

func Default() Config {
	return Config{
		HotelName:     "Hotel Grand Palace",
		StandardRate:  50000,
		SuiteRate:     150000,
		VIPDiscount:   0.15,
		CustomersFile: "config/customers.csv",
		RoomsFile:     "config/rooms.csv",
		Host:          "localhost",
		Port:          "8092",
	}
}

// Load reads the JSON properties file at path over the defaults. Any read
// or parse failure falls back to the full default set.
func Load(l *logger.Logger, path string) Config {
	conf := Default()

	parsed, err := parse(path)
	if err != nil {
		l.LogWarnf("Could not load properties from %v, using defaults: %v", path, err.Error())

		return conf
	}

	merge(&conf, parsed)

	l.LogInfo("Properties loaded from %v", path)

	return conf
}

func parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read properties file")
	}

	var conf Config
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, errors.Wrap(err, "parse properties file")
	}

	return &conf, nil
}

// merge keeps the default for every key the file leaves unset. A zero VIP
// discount cannot be expressed through the file; that matches the original
// properties, where the key always carried a rate.
func merge(conf *Config, parsed *Config) {
	if parsed.HotelName != "" {
		conf.HotelName = parsed.HotelName
	}

	if parsed.StandardRate > 0 {
		conf.StandardRate = parsed.StandardRate
	}

	if parsed.SuiteRate > 0 {
		conf.SuiteRate = parsed.SuiteRate
	}

	if parsed.VIPDiscount > 0 {
		conf.VIPDiscount = parsed.VIPDiscount
	}

	if parsed.CustomersFile != "" {
		conf.CustomersFile = parsed.CustomersFile
	}

	if parsed.RoomsFile != "" {
		conf.RoomsFile = parsed.RoomsFile
	}

	if parsed.Host != "" {
		conf.Host = parsed.Host
	}

	if parsed.Port != "" {
		conf.Port = parsed.Port
	}
}
