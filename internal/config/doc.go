// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file ($XDG_CONFIG_HOME/daylist/daylist.toml or ~/.config/daylist/daylist.toml)
// 3. Project config file (./daylist.toml, then ./.daylist.toml)
// 4. Explicit config file (--config)
// 5. Environment variables (DAYLIST_*)
// 6. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
package config
