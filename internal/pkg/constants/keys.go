package constants

// Viper config keys.
const (
	ViperKeyListenAddr  = "listen_addr"
	ViperKeyPostgresDSN = "postgres_dsn"
	ViperKeyCORSOrigins = "cors_origins"
	ViperKeyLogLevel    = "log_level"
	ViperSecretKey      = "secret_key"
	ViperKeyCatalogoURL = "catalogo_mga_url"
)

// Cookie keys.
const (
	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"
)

// Echo context keys.
const (
	CtxKeyRol = "rol"
)

// Roles de la aplicación. El rol se elige al entrar y viaja en el token;
// solo "evaluador" habilita los documentos de evaluación.
const (
	RolDependencia = "dependencia"
	RolRadicador   = "radicador"
	RolEvaluador   = "evaluador"
)
