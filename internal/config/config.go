package config

import (
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server   Server   `koanf:"server"`
	Database Database `koanf:"db"`
	Trip     Trip     `koanf:"trip"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Database struct {
	// DSN is the SQLite data source. The default ":memory:" keeps all state
	// inside the process.
	DSN string `koanf:"dsn"`
}

type Trip struct {
	// DefaultExchangeRate converts trip-currency amounts for display.
	DefaultExchangeRate float64 `koanf:"defaultexchangerate"`
	// FallbackLocation keys the weather lookup for days without a located item.
	FallbackLocation string `koanf:"fallbacklocation"`
}

func (a Application) Validate() error {
	if err := validation.ValidateStruct(&a.Server,
		validation.Field(&a.Server.Addr, validation.Required),
	); err != nil {
		return err
	}
	if err := validation.ValidateStruct(&a.Database,
		validation.Field(&a.Database.DSN, validation.Required),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&a.Trip,
		validation.Field(&a.Trip.DefaultExchangeRate, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&a.Trip.FallbackLocation, validation.Required),
	)
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Addr: ":8181",
		},
		Database: Database{
			DSN: ":memory:",
		},
		Trip: Trip{
			DefaultExchangeRate: 0.215,
			FallbackLocation:    "京都",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "TRIPPLAN_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "TRIPPLAN_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	if err := app.Validate(); err != nil {
		return Application{}, err
	}

	return app, nil
}
