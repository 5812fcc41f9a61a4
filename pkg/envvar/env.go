package envvar

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Env returns STREAMTA_ENV, development when unset or empty.
func Env() string {
	if env, _ := String(Key("ENV")); env != "" {
		return env
	}
	return EnvDevelopment
}

func IsProduction() bool {
	return Env() == EnvProduction
}

// DotenvFiles lists the files loaded before the flags are parsed, the most specific first.
func DotenvFiles() []string {
	return []string{".env." + Env() + ".local", ".env." + Env(), ".env.local", ".env"}
}
