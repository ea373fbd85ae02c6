package config

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	db := cfg.Storage.DB
	if db.DSN == "" && (db.Host == "" || db.Name == "") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Logs.RetentionDays < 1 {
		return ErrInvalidLogConfigs
	}

	return nil
}
