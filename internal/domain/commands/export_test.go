package commands

// CheckVersion exports checkVersion for testing.
var CheckVersion = checkVersion //nolint:gochecknoglobals // test export

// Validate exports validate for testing.
var Validate = validate //nolint:gochecknoglobals // test export
