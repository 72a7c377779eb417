package envvar

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every variable name looked up by this package.
const Prefix = "BSTREE_"

// Name returns the full environment variable name for n, e.g. "env" -> "BSTREE_ENV".
func Name(n string) string {
	n = strings.ToUpper(strings.ReplaceAll(n, "-", "_"))
	if strings.HasPrefix(n, Prefix) {
		return n
	}

	return Prefix + n
}

func String(n string, args ...string) (string, bool) {
	defaultValue := ""
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(Name(n))
	if !ok {
		return defaultValue, false
	}

	return str, true
}

func Int(n string, args ...int) (int, bool) {
	defaultValue := 0
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(Name(n))
	if !ok {
		return defaultValue, false
	}

	num, err := strconv.Atoi(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as int, incorrect format", Name(n), str)
		return defaultValue, false
	}

	return num, true
}

func Bool(n string, args ...bool) (bool, bool) {
	defaultValue := false
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(Name(n))
	if !ok {
		return defaultValue, false
	}

	b, err := strconv.ParseBool(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as bool, incorrect format", Name(n), str)
		return defaultValue, false
	}

	return b, true
}

// IsProduction reports whether BSTREE_ENV names a production environment.
func IsProduction() bool {
	env, _ := String("env")
	switch strings.ToLower(env) {
	case "production", "prod":
		return true
	}

	return false
}
