package config

func obfuscate(s string) string {
	if s == "" {
		return "(not set)"
	}
	return "(set)"
}
