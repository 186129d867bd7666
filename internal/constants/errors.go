package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidLanguage    = errors.New("invalid language, expected one of en, es, de, fr, zh")
	ErrInvalidOutput      = errors.New("invalid output format, expected table, json or yaml")
	ErrNoHomeDirectory    = errors.New("could not determine home directory")
	ErrAPIKeyPromptNoTerm = errors.New("stdin is not a terminal, pass the API key as an argument")
	ErrMissingConfigValue = errors.New("missing configuration value")
	ErrInvalidTimeout     = errors.New("invalid timeout, expected a duration such as 10s")
)

// Command errors.
var (
	ErrUnknownEndpoint      = errors.New("unknown endpoint, run 'gw2 endpoints' to list them")
	ErrConflictingSelectors = errors.New("--ids, --all and --param are mutually exclusive")
	ErrOtherIDsWithoutIDs   = errors.New("--other-ids requires --ids")
	ErrInvalidParamFormat   = errors.New("invalid --param format, expected key=value")
	ErrNoEndpointsSpecified = errors.New("at least one endpoint must be specified")
)
