package config

// Diagnostics reports which config sections are populated without exposing
// any values. Safe to return from an HTTP endpoint or print from the CLI.
func Diagnostics(cfg *Config) map[string]any {
	return map[string]any{
		"environment":     cfg.Server.Environment,
		"service_name":    cfg.Observability.ServiceName,
		"service_version": cfg.Observability.ServiceVersion,
		"sections": map[string]bool{
			"database":        cfg.Database.Host != "",
			"casbin_database": cfg.CasbinDatabase.Host != "",
			"redis":           cfg.Redis.Addr != "",
			"authentication":  cfg.Authentication.Paseto.Mode != "",
			"email":           cfg.Email.Enabled,
			"sms":             cfg.SMS.Enabled,
			"s3":              cfg.S3.Bucket != "",
			"nats":            cfg.Nats.URL != "",
			"observability":   cfg.Observability.Enabled,
			"loki":            cfg.Logging.Output.Loki.Enabled,
		},
	}
}
