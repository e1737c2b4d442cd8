// Package config handles YAML configuration loading for the extractor and
// environment loading for the database connector.
//
// Extractor configuration files support ${VAR} syntax for environment variable
// interpolation. The connector reads only DB_NAME, DB_USERNAME, DB_PASSWORD,
// DB_HOST and DB_PORT, optionally seeded from a local .env file.
package config
