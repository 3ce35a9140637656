package config

import (
	"os"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"gopkg.in/yaml.v3"

	"github.com/aswaq/aswaq-notifications/notifyclient"
)

const CName = "config"

func NewFromFile(path string) (c *Config, err error) {
	c = &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return
}

type Config struct {
	NotifyClient notifyclient.Config `yaml:"notifyClient"`
	Metric       metric.Config       `yaml:"metric"`
	Log          logger.Config       `yaml:"log"`
}

func (c *Config) Init(a *app.App) (err error) {
	return nil
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetNotifyClient() notifyclient.Config {
	return c.NotifyClient
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetLogger() logger.Config {
	return c.Log
}
