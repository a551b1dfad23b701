package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // "sqlite" or "mysql"
	Path   string // sqlite file
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Push struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subject         string
	Timeout         time.Duration
}

type Config struct {
	HTTP HTTP
	DB   DB
	JWT  struct {
		Secret string
		Issuer string
		ExpMin int
	}
	Push Push

	// ModulesDir holds one payload file per available module; the file
	// basename (without extension) is the module name.
	ModulesDir string

	// AgentTimeout is the liveness window: agents unseen for longer are
	// treated as dormant.
	AgentTimeout time.Duration

	Admin struct {
		Username string
		Password string
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("panel.host", "127.0.0.1")
	v.SetDefault("panel.port", 9500)
	v.SetDefault("panel.db.driver", "sqlite")
	v.SetDefault("panel.db.path", "beacon-guard.db")
	v.SetDefault("panel.db.host", "127.0.0.1")
	v.SetDefault("panel.db.port", 3306)
	v.SetDefault("panel.db.user", "root")
	v.SetDefault("panel.db.pass", "")
	v.SetDefault("panel.db.name", "beacon_guard")
	v.SetDefault("panel.modules_dir", "modules")
	v.SetDefault("panel.agent_timeout_sec", 8)
	v.SetDefault("panel.push.subject", "mailto:operator@example.org")
	v.SetDefault("panel.push.timeout_sec", 10)
	v.SetDefault("panel.admin.username", "admin")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("panel.host"), Port: v.GetInt("panel.port")},
		DB: DB{
			Driver: v.GetString("panel.db.driver"),
			Path:   v.GetString("panel.db.path"),
			Host:   v.GetString("panel.db.host"),
			Port:   v.GetInt("panel.db.port"),
			User:   v.GetString("panel.db.user"),
			Pass:   v.GetString("panel.db.pass"),
			Name:   v.GetString("panel.db.name"),
		},
		Push: Push{
			VAPIDPublicKey:  v.GetString("panel.push.vapid_public"),
			VAPIDPrivateKey: v.GetString("panel.push.vapid_private"),
			Subject:         v.GetString("panel.push.subject"),
			Timeout:         time.Duration(v.GetInt("panel.push.timeout_sec")) * time.Second,
		},
		ModulesDir:   v.GetString("panel.modules_dir"),
		AgentTimeout: time.Duration(v.GetInt("panel.agent_timeout_sec")) * time.Second,
	}
	cfg.JWT.Secret = v.GetString("panel.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("panel.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "beacon-guard"
	}
	cfg.JWT.ExpMin = v.GetInt("panel.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	cfg.Admin.Username = v.GetString("panel.admin.username")
	cfg.Admin.Password = v.GetString("panel.admin.password")
	return cfg, nil
}
