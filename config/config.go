package config

import (
	"fmt"
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
	Host    string `yaml:"host" json:"host"`
	Port    int    `yaml:"port" json:"port"`
	Secret  string `yaml:"secret" json:"secret"`
	MenuURL string `yaml:"menu_url" json:"menu_url"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type MailConfig struct {
	SMTPHost string `yaml:"smtp_host" json:"smtp_host"`
	SMTPPort int    `yaml:"smtp_port" json:"smtp_port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
}

type AppConfig struct {
	System   SysConfig  `yaml:"system" json:"system"`
	Web      WebConfig  `yaml:"web" json:"web"`
	Database DBConfig   `yaml:"database" json:"database"`
	Logger   LogConfig  `yaml:"logger" json:"logger"`
	Mail     MailConfig `yaml:"mail" json:"mail"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func (c *AppConfig) GetPublicDir() string {
	return path.Join(c.System.Workdir, "public")
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "menuboard",
		Location: "Asia/Kolkata",
		Workdir:  "/var/menuboard",
		Debug:    true,
	},
	Web: WebConfig{
		Host:    "0.0.0.0",
		Port:    1880,
		Secret:  "9b6de5cc-menuboard-0e62-4812-b9b8",
		MenuURL: "http://localhost:1880/menu",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "menuboard",
		User:     "postgres",
		Passwd:   "myroot",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/menuboard/logs/menuboard.log",
	},
	Mail: MailConfig{
		SMTPHost: "127.0.0.1",
		SMTPPort: 25,
		From:     "no-reply@menuboard.local",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvInt64Value(name string, f func(v int64)) {
	var evalue = os.Getenv(name)
	if evalue == "" {
		return
	}
	var i int64
	if _, err := fmt.Sscanf(evalue, "%d", &i); err == nil {
		f(i)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

// LoadConfig loads the configuration from file, falling back to defaults and
// applying MENUBOARD_* environment overrides last.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	if cfile != "" && FileExists(cfile) {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	} else {
		cfg = DefaultAppConfig
	}

	setEnvValue("MENUBOARD_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("MENUBOARD_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("MENUBOARD_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("MENUBOARD_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("MENUBOARD_WEB_MENU_URL", func(v string) { cfg.Web.MenuURL = v })
	setEnvInt64Value("MENUBOARD_WEB_PORT", func(v int64) { cfg.Web.Port = int(v) })

	setEnvValue("MENUBOARD_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("MENUBOARD_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("MENUBOARD_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("MENUBOARD_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvInt64Value("MENUBOARD_DB_PORT", func(v int64) { cfg.Database.Port = int(v) })

	setEnvValue("MENUBOARD_MAIL_SMTP_HOST", func(v string) { cfg.Mail.SMTPHost = v })
	setEnvInt64Value("MENUBOARD_MAIL_SMTP_PORT", func(v int64) { cfg.Mail.SMTPPort = int(v) })
	setEnvValue("MENUBOARD_MAIL_USERNAME", func(v string) { cfg.Mail.Username = v })
	setEnvValue("MENUBOARD_MAIL_PASSWORD", func(v string) { cfg.Mail.Password = v })
	setEnvValue("MENUBOARD_MAIL_FROM", func(v string) { cfg.Mail.From = v })

	return cfg
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
