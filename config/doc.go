// Package config reads the environment that bootstraps a logging
// context.
//
// DEBUG carries the initial enable specification, parsed exactly like
// the argument of Enable: patterns separated by whitespace or commas,
// '*' as wildcard, a leading '!' to disable. The remaining settings use
// the TAGLOG_ prefix:
//
//	TAGLOG_LEVEL        default level for loggers (verbose)
//	TAGLOG_COLORS       auto, true or false (auto)
//	TAGLOG_DEPTH        object inspection depth (2)
//	TAGLOG_TRACE        append the call site (false)
//	TAGLOG_FD           output descriptor while no sink is registered (2)
//	TAGLOG_TAG_WIDTH    tag column width (12)
//	TAGLOG_LEVEL_WIDTH  level column width (7)
//
// LoadDotEnv can seed the environment from a .env file first.
package config
