// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package iex

import (
	"context"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stockparfait/errors"
)

// Config is the calling context's client configuration, typically read from a
// TOML file. Only Token is required, and it may come from the IEX_TOKEN
// environment variable instead.
type Config struct {
	Token      string `toml:"token"`
	BaseURL    string `toml:"base_url"`    // default: iex.URL
	Version    string `toml:"version"`     // default: "stable"
	TimeoutSec int    `toml:"timeout_sec"` // default: 30
	Sandbox    bool   `toml:"sandbox"`
}

// LoadConfig reads a Config from a TOML file. A missing token falls back to
// the IEX_TOKEN environment variable.
func LoadConfig(filePath string) (*Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	if c.Token == "" {
		c.Token = os.Getenv("IEX_TOKEN")
	}
	return &c, nil
}

// Options converts the config into client options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Sandbox {
		opts = append(opts, Sandbox())
	}
	if c.BaseURL != "" {
		opts = append(opts, BaseURL(c.BaseURL))
	}
	if c.Version != "" {
		opts = append(opts, Version(c.Version))
	}
	if c.TimeoutSec > 0 {
		opts = append(opts, Timeout(time.Duration(c.TimeoutSec)*time.Second))
	}
	return opts
}

// UseClient injects a client configured by c into the context.
func (c *Config) UseClient(ctx context.Context) context.Context {
	return UseClient(ctx, c.Token, c.Options()...)
}
