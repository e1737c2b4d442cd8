package database

import (
	"strings"

	"github.com/rickgao/energy-billing/internal/config"
)

// BuildConnString builds a libpq keyword/value connection string from config.
//
// Empty fields are omitted so the driver falls back to its own defaults
// (PGHOST, PGPORT, the unix socket, and so on).
func BuildConnString(cfg config.DBConfig) string {
	params := []struct {
		key, value string
	}{
		{"dbname", cfg.Name},
		{"user", cfg.User},
		{"password", cfg.Password},
		{"host", cfg.Host},
		{"port", cfg.Port},
	}

	var b strings.Builder
	for _, p := range params {
		if p.value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(quoteValue(p.value))
	}
	return b.String()
}

// quoteValue single-quotes v, escaping backslashes and quotes.
func quoteValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
