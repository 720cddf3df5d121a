// Package config loads sleuth's own configuration file.
//
// The config lives at ~/.config/sleuth/config.toml and currently carries two
// keys: api_base (host:port of the Evidence Finder API, default
// 127.0.0.1:8000) and log_dir (where sleuth writes its diagnostic log). The
// API base is injected into the client at construction; nothing in the
// program inspects the environment to guess it. A missing file is not an
// error: defaults apply. A present but unparseable file is an error.
package config
