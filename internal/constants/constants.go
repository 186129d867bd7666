package constants

import "time"

// Guild Wars 2 API defaults.
const (
	// DefaultBaseURL is the official Guild Wars 2 API endpoint.
	DefaultBaseURL = "https://api.guildwars2.com"

	// DefaultHTTPTimeout is the default per-call timeout.
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "gw2api-go"
)

// HTTP headers.
const (
	// HeaderAuthorization carries the bearer API key.
	HeaderAuthorization = "Authorization"

	// HeaderAcceptLanguage carries the two-letter locale code.
	HeaderAcceptLanguage = "Accept-Language"

	// HeaderAccept is set on every request.
	HeaderAccept = "Accept"

	// HeaderUserAgent identifies the client.
	HeaderUserAgent = "User-Agent"

	// BearerPrefix prefixes the API key in the Authorization header.
	BearerPrefix = "Bearer "

	// MediaTypeJSON is the only media type the API serves.
	MediaTypeJSON = "application/json"
)

// Query conventions.
const (
	// QueryParamIDs is the parameter used by "get all".
	QueryParamIDs = "ids"

	// QueryValueAll requests every resource of a list endpoint.
	QueryValueAll = "all"

	// IDSeparator joins identifiers in an id-list parameter.
	IDSeparator = ","

	// TemplatePlaceholder marks an unresolved value in an endpoint template.
	TemplatePlaceholder = "{}"
)

// HTTP status codes with a fixed classification.
const (
	// HTTPStatusOK is a full successful response.
	HTTPStatusOK = 200

	// HTTPStatusPartialContent is returned when an id list only partially matched.
	HTTPStatusPartialContent = 206

	// HTTPStatusForbidden usually means an insufficiently scoped key.
	HTTPStatusForbidden = 403

	// HTTPStatusNotFound means the endpoint or id does not exist.
	HTTPStatusNotFound = 404

	// HTTPStatusRequestTimeout is a server-side timeout.
	HTTPStatusRequestTimeout = 408

	// HTTPStatusServiceUnavailable means the endpoint is disabled.
	HTTPStatusServiceUnavailable = 503
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// CLI configuration.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".gw2"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file extension.
	ConfigFileType = "yml"

	// EnvPrefix is the prefix for environment overrides (GW2_API_KEY, ...).
	EnvPrefix = "GW2"

	// MinimumArgumentCount is the number of arguments of "config set".
	MinimumArgumentCount = 2

	// VisibleKeyChars is how many trailing API key characters are shown when masking.
	VisibleKeyChars = 4

	// MaskedSecret replaces a hidden secret in output.
	MaskedSecret = "***"

	// NotAvailable is printed for empty values.
	NotAvailable = "N/A"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// BooleanTrue represents the string "true".
const BooleanTrue = "true"
