// Package config provides configuration management for the calculator.
//
// Configuration starts from Default, is optionally overlaid by a TOML file
// (LoadFile), and is finally overridden by environment variables.
//
// Configuration Sections:
//   - Logging: log level and output format
//   - Display: history display limit, output format, memory flash delay
//   - Engine: whether sessions carry the scientific extension
//   - Metrics: whether sessions collect Prometheus metrics
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Println(cfg.Display.HistoryLimit)
//
// Environment Variables:
//   - CALC_LOG_LEVEL, CALC_LOG_DEV
//   - CALC_HISTORY_LIMIT, CALC_OUTPUT, CALC_MEMORY_FLASH_MS
//   - CALC_SCIENTIFIC, CALC_METRICS
package config
