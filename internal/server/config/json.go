package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "15m" and integer nanoseconds.
//
// Only keys present in the file override the current Config values.
type JsonConfig struct {
	Environment                  string          `json:"environment"`
	EndpointAddrGRPC             string          `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string          `json:"endpoint_addr_http"`
	DatabaseDSN                  string          `json:"database_dsn"`
	SecretKey                    string          `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	RefreshTokenBytes            *int            `json:"refresh_token_bytes"`
	TokenPepper                  string          `json:"token_pepper"`
	PasswordResetValidity        *timex.Duration `json:"password_reset_validity"`
	PasswordResetURL             string          `json:"password_reset_url"`
	RateLimitAdmin               *int            `json:"rate_limit_admin"`
	RateLimitUser                *int            `json:"rate_limit_user"`
	RateLimitService             *int            `json:"rate_limit_service"`
	RateLimitAnonymous           *int            `json:"rate_limit_anonymous"`
	RateLimitWindow              *timex.Duration `json:"rate_limit_window"`
	APIKey                       string          `json:"api_key"`
	SweepInterval                *timex.Duration `json:"sweep_interval"`
	SweepGrace                   *timex.Duration `json:"sweep_grace"`
	S3RootUser                   string          `json:"s3_root_user"`
	S3RootPassword               string          `json:"s3_root_password"`
	S3Bucket                     string          `json:"s3_bucket"`
	S3Region                     string          `json:"s3_region"`
	S3BaseEndpoint               string          `json:"s3_base_endpoint"`
	KafkaBrokers                 []string        `json:"kafka_brokers"`
	KafkaEventsTopic             string          `json:"kafka_events_topic"`
	KafkaMailTopic               string          `json:"kafka_mail_topic"`
	OTelEndpoint                 string          `json:"otel_endpoint"`
	LogLevel                     string          `json:"log_level"`
	LogFormat                    string          `json:"log_format"`
	CookieSecure                 *bool           `json:"cookie_secure"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; when neither
// is set no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.Environment, c.Environment)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setInt(&config.RefreshTokenBytes, c.RefreshTokenBytes)
	setString(&config.TokenPepper, c.TokenPepper)
	setDuration(&config.PasswordResetValidity, c.PasswordResetValidity)
	setString(&config.PasswordResetURL, c.PasswordResetURL)
	setInt(&config.RateLimitAdmin, c.RateLimitAdmin)
	setInt(&config.RateLimitUser, c.RateLimitUser)
	setInt(&config.RateLimitService, c.RateLimitService)
	setInt(&config.RateLimitAnonymous, c.RateLimitAnonymous)
	setDuration(&config.RateLimitWindow, c.RateLimitWindow)
	setString(&config.APIKey, c.APIKey)
	setDuration(&config.SweepInterval, c.SweepInterval)
	setDuration(&config.SweepGrace, c.SweepGrace)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if len(c.KafkaBrokers) > 0 {
		config.KafkaBrokers = c.KafkaBrokers
	}
	setString(&config.KafkaEventsTopic, c.KafkaEventsTopic)
	setString(&config.KafkaMailTopic, c.KafkaMailTopic)
	setString(&config.OTelEndpoint, c.OTelEndpoint)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	if c.CookieSecure != nil {
		config.CookieSecure = *c.CookieSecure
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
