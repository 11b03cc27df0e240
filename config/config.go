// Package config reads parser and tool settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/andaru/gii/flatten"
	"github.com/andaru/gii/parser"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the settings of the gii tools.
type Config struct {
	// ElementKinds extends or overrides the default flattening Kinds.
	ElementKinds flatten.Kinds
	// LogUnrecognized enables logging of unrecognized element notices.
	LogUnrecognized bool
	// MetricsFile, if set, is where parse metrics are written in the
	// Prometheus text format.
	MetricsFile string
}

// element list variables, by the Kind they assign
var kindEnv = []struct {
	key  string
	kind flatten.Kind
}{
	{"GII_CONTAINER_ELEMENTS", flatten.Container},
	{"GII_EMPHASIS_ELEMENTS", flatten.Emphasis},
	{"GII_LINEBREAK_ELEMENTS", flatten.LineBreak},
	{"GII_PARAGRAPH_ELEMENTS", flatten.Paragraph},
	{"GII_TABLE_ELEMENTS", flatten.Table},
}

// Load reads configuration from environment variables, after loading
// the given .env files. Variables already set in the environment take
// precedence over the files.
func Load(files ...string) (*Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, errors.Wrap(err, "config: load env file")
		}
	}
	c := &Config{
		ElementKinds:    flatten.Kinds{},
		LogUnrecognized: getEnvBool("GII_LOG_UNRECOGNIZED", true),
		MetricsFile:     getEnv("GII_METRICS_FILE", ""),
	}
	for _, e := range kindEnv {
		for _, name := range getEnvList(e.key) {
			c.ElementKinds[name] = e.kind
		}
	}
	// GII_ELEMENT_KINDS takes name=kind pairs, e.g. "Absatz=paragraph"
	for _, entry := range getEnvList("GII_ELEMENT_KINDS") {
		name, kindName, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Errorf("config: GII_ELEMENT_KINDS: malformed entry %q", entry)
		}
		kind, err := flatten.ParseKind(kindName)
		if err != nil {
			return nil, errors.Wrap(err, "config: GII_ELEMENT_KINDS")
		}
		c.ElementKinds[name] = kind
	}
	return c, nil
}

// ParserOptions returns the parser options for c.
func (c *Config) ParserOptions() []parser.Option {
	opts := []parser.Option{parser.WithNoticeLogging(c.LogUnrecognized)}
	if len(c.ElementKinds) > 0 {
		opts = append(opts, parser.WithElementKinds(c.ElementKinds))
	}
	return opts
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

// getEnvList returns the comma separated values of key.
func getEnvList(key string) (list []string) {
	for _, s := range strings.Split(os.Getenv(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return list
}
