// Package config manages user-level settings stored at ~/.stackcraft/config.yaml.
// Values may also come from STACKCRAFT_* environment variables. It holds the
// defaults the create command falls back to when a flag is not given, such as
// the template directory, the external tools file and the dependency version.
package config
