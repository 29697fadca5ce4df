// Package config provides configuration management for heartclock.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (highest priority)
//  2. YAML configuration file
//  3. Default values (lowest priority)
//
// Supported environment variables:
//   - HEARTCLOCK_START: Start of the counted period
//   - HEARTCLOCK_MUSIC: Path to the background track (mp3, wav or flac)
//   - HEARTCLOCK_VOLUME: Playback volume between 0 and 1
//   - HEARTCLOCK_MAX_PARTICLES: Soft cap on floating hearts
//   - HEARTCLOCK_LOG_LEVEL: Log level (debug, info, warn, error)
//
// Example configuration file (heartclock.yaml):
//
//	start: "2025-03-01 00:00:00"
//	music: "assets/song.mp3"
//	volume: 0.9
//	max_particles: 80
//	window:
//	  width: 1024
//	  height: 640
//	log_level: "info"
package config
