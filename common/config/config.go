package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	trg "github.com/siamlex/gazette-search-service/crawlers/thai-royal-gazette"
)

func loadEnvString(key string, result *string) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	*result = s
}

func loadEnvUint(key string, result *uint) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return
	}
	*result = uint(n)
}

func loadEnvInt(key string, result *int) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return
	}
	*result = n
}

func loadEnvBool(key string, result *bool) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return
	}
	*result = b
}

func loadEnvDuration(key string, result *time.Duration) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return
	}
	*result = d
}

/* Listen Configuration */

type listenConfig struct {
	Host string `json:"host"`
	Port uint   `json:"port"`
}

func (l listenConfig) Addr() string {
	return fmt.Sprintf("%s:%d", l.Host, l.Port)
}

func defaultListenConfig() listenConfig {
	return listenConfig{
		Host: "127.0.0.1",
		Port: 3000,
	}
}

func (l *listenConfig) loadFromEnv() {
	loadEnvString("LISTEN_HOST", &l.Host)
	loadEnvUint("LISTEN_PORT", &l.Port)
	loadEnvUint("PORT", &l.Port)
}

/* Security Configuration */

// securityConfig carries the bearer token the API is guarded with. The
// token is resolved from the environment at startup so it can be rotated
// per deployment instead of living in code.
type securityConfig struct {
	ApiToken string
}

func (s *securityConfig) loadFromEnv() {
	loadEnvString("API_TOKEN", &s.ApiToken)
}

func defaultSecurityConfig() securityConfig {
	return securityConfig{
		ApiToken: "",
	}
}

/* Gazette crawl configuration */

func loadGazetteFromEnv(c *trg.Config) {
	loadEnvString("GAZETTE_SEARCH_URL", &c.SearchURL)
	loadEnvString("GAZETTE_USER_AGENT", &c.UserAgent)
	loadEnvBool("GAZETTE_HEADLESS", &c.Headless)
	loadEnvInt("GAZETTE_VIEWPORT_WIDTH", &c.ViewportWidth)
	loadEnvInt("GAZETTE_VIEWPORT_HEIGHT", &c.ViewportHeight)
	loadEnvDuration("GAZETTE_FIRST_PAGE_WAIT", &c.FirstPageWait)
	loadEnvDuration("GAZETTE_PAGE_WAIT", &c.PageWait)
	loadEnvDuration("GAZETTE_SETTLE_DELAY", &c.SettleDelay)
	loadEnvInt("GAZETTE_MAX_PAGES", &c.MaxPages)
}

type Config struct {
	Listen   listenConfig
	Security securityConfig
	Gazette  trg.Config
}

func (c *Config) LoadFromEnv() {
	c.Listen.loadFromEnv()
	c.Security.loadFromEnv()
	loadGazetteFromEnv(&c.Gazette)
}

func DefaultConfig() Config {
	return Config{
		Listen:   defaultListenConfig(),
		Security: defaultSecurityConfig(),
		Gazette:  trg.DefaultConfig(),
	}
}
