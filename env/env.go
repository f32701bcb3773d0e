// Package env is an implementation of the env.Source interface from
// go-simpler.org, reading variables from a .env file.
package env

import (
	"os"
	"strings"

	"hexstream.lol/chk"
)

// Env is a key/value map used to represent environment variables.
type Env map[string]string

// GetEnv reads a file of KEY=value lines in shell environment variable format.
// Blank lines and lines starting with # are skipped, as are lines with no '='.
// Values may be wrapped in single or double quotes, and a leading "export " is
// ignored so the output of keyvalue.PrintEnv can be read back.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		split := strings.SplitN(line, "=", 2)
		if len(split) != 2 {
			continue
		}
		env[strings.TrimSpace(split[0])] = unquote(strings.TrimSpace(split[1]))
	}
	return
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// LookupEnv returns the raw string value associated with a provided key name,
// used as a custom environment variable loader for go-simpler.org/env to enable
// .env file loading.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}

// OSFirst is a source that looks a key up in the process environment first, and
// falls back to the file, so the environment overrides the .env file.
type OSFirst struct{ File Env }

func (o OSFirst) LookupEnv(key string) (value string, ok bool) {
	if value, ok = os.LookupEnv(key); ok {
		return
	}
	return o.File.LookupEnv(key)
}
