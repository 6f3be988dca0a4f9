package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

type FixtureConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Fixture FixtureConfig `yaml:"fixture" json:"fixture"`
	Logger  LoggerConfig  `yaml:"logger" json:"logger"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "Artistry",
			Location: "Asia/Shanghai",
			Workdir:  "/var/artistry",
			Debug:    true,
		},
		Web: WebConfig{
			Host:   "0.0.0.0",
			Port:   1816,
			Secret: "9b6de5cc-artistry-0768-7dfe-cc4c",
		},
		Fixture: FixtureConfig{
			Dir: "data",
		},
		Logger: LoggerConfig{
			Mode:       "development",
			FileEnable: true,
			Filename:   "/var/artistry/artistry.log",
		},
	}
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

// LoadConfig reads the YAML config file and applies environment overrides.
// A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig()
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("ARTISTRY_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("ARTISTRY_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("ARTISTRY_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("ARTISTRY_FIXTURE_DIR", func(v string) { cfg.Fixture.Dir = v })
	setEnvValue("ARTISTRY_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = path.Join(cfg.System.Workdir, "artistry.log")
	}
	return cfg
}
