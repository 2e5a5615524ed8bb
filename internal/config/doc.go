// Package config handles configuration loading for muse-studio.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from MUSE_CONFIG environment variable
//  2. ./config.yaml (current directory)
//  3. ~/.config/muse/studio.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	session:
//	  secret: "${MUSE_SESSION_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Duration Parsing
//
// Duration values use Go's time.ParseDuration syntax:
//
//	session:
//	  ttl: "720h"
//
// Supported units: ns, us, ms, s, m, h
//
// # Configuration Sections
//
// Storage:
//
//	storage:
//	  path: "~/.local/share/muse/studio.db"
//
// Session tokens:
//
//	session:
//	  secret: "${MUSE_SESSION_SECRET}"  # Required
//	  ttl: "720h"                       # Defaults to 30 days when omitted
//
// Generation backend:
//
//	ai:
//	  model: "gemini-2.5-flash"
//	  image_model: "gemini-2.0-flash-image"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - Storage path presence
//   - Session secret presence
//   - Duration format validity
//
// # Usage
//
// Load configuration from a path:
//
//	cfg, err := config.Load("/etc/muse/studio.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
