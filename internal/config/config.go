package config

import (
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string `yaml:"serviceName" env:"SERVICE_NAME" envDefault:"apk-gate"`

	Server ServerConfig  `yaml:"server"`
	DB     DBConfig      `yaml:"db"`
	Redis  RedisConfig   `yaml:"redis"`
	Auth   AuthConfig    `yaml:"auth"`
	APK    APKConfig     `yaml:"apk"`
	Email  EmailConfig   `yaml:"email"`
	Jaeger *JaegerConfig `yaml:"jaeger"`
}

type ServerConfig struct {
	Mode   string `yaml:"mode"   env:"SERVER_MODE"   envDefault:"dev"`
	Port   int    `yaml:"port"   env:"SERVER_PORT"   envDefault:"8080"`
	Scheme string `yaml:"scheme" env:"SERVER_SCHEME" envDefault:"http"`
	Domain string `yaml:"domain" env:"SERVER_DOMAIN" envDefault:"localhost"`
}

type DBConfig struct {
	Host     string `yaml:"host"     env:"POSTGRES_HOST"     envDefault:"localhost"`
	Port     int    `yaml:"port"     env:"POSTGRES_PORT"     envDefault:"5432"`
	User     string `yaml:"user"     env:"POSTGRES_USER"     envDefault:"postgres"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Database string `yaml:"database" env:"POSTGRES_DB"       envDefault:"apk_gate"`
}

type RedisConfig struct {
	Addr string `yaml:"addr" env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Pass string `yaml:"pass" env:"REDIS_PASS" envDefault:""`
}

type AuthConfig struct {
	JWT      JWTConfig `yaml:"jwt"`
	OpsKey   string    `yaml:"opsKey"   env:"AUTH_OPS_KEY_HASH"` // bcrypt hash of the operations key
	Disabled bool      `yaml:"disabled" env:"AUTH_DISABLED"     envDefault:"false"`
}

type JWTConfig struct {
	Secret string `yaml:"secret" env:"AUTH_JWT_SECRET"`
	Issuer string `yaml:"issuer" env:"AUTH_JWT_ISSUER" envDefault:"apk-gate"`
}

type APKConfig struct {
	// ArtifactRoot is the base path entitlement records point into.
	// Serving the files themselves is someone else's job.
	ArtifactRoot string `yaml:"artifactRoot" env:"APK_ARTIFACT_ROOT" envDefault:"/var/lib/apk-gate/apks"`
}

type EmailConfig struct {
	Enabled bool   `yaml:"enabled" env:"EMAIL_ENABLED" envDefault:"false"`
	Server  string `yaml:"server"  env:"EMAIL_SERVER"`
	Port    int    `yaml:"port"    env:"EMAIL_PORT"    envDefault:"587"`
	User    string `yaml:"user"    env:"EMAIL_USER"`
	Pass    string `yaml:"pass"    env:"EMAIL_PASS"`
	Admin   string `yaml:"admin"   env:"EMAIL_ADMIN"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string `yaml:"type"  env:"JAEGER_SAMPLER_TYPE"  envDefault:"const"`
		Param int    `yaml:"param" env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
	} `yaml:"sampler"`
	Reporter struct {
		LogSpans           bool   `yaml:"logSpans"           env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
		LocalAgentHostPort string `yaml:"localAgentHostPort" env:"JAEGER_AGENT_HOST_PORT"    envDefault:"localhost:6831"`
	} `yaml:"reporter"`
}

func MustLoad(path string) Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file found", zap.Error(err))
	}

	conf := Config{}
	if bytes, err := os.ReadFile(path); err == nil {
		if err = yaml.Unmarshal(bytes, &conf); err != nil {
			zap.L().Fatal("failed to parse config file", zap.String("path", path), zap.Error(err))
		}
	} else {
		zap.L().Info("config file not found, using env only", zap.String("path", path))
	}

	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse env config", zap.Error(err))
	}

	return conf
}
