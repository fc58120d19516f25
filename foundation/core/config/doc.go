/*
Package config provides file based configuration for boole.

Package: config
Title: Core Configuration Management
Description: Loads TOML and YAML files into a map with dot-path getters.
             Every key can be overridden by an environment variable built
             from an optional prefix and the upper-cased key path.
Author: msto63
Version: v0.3.0
Created: 2025-01-25
Modified: 2026-10-16

Change History:
- 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
- 2026-10-16 v0.2.0: Trimmed for boole
- 2026-10-16 v0.3.0: Range validation moved to the typed configuration

Usage:

	cfg, err := config.LoadWithOptions("configs/config.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "BOOLE",
	})
	if err != nil {
		return err
	}
	port := cfg.GetInt("server.port", 8080) // BOOLE_SERVER_PORT wins if set
*/
package config
