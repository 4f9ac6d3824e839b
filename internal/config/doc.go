// Package config holds the user's tournament filter configuration.
//
// A configuration selects playing styles and tournament classes from the
// fixed catalogs published on the BVV tournament page and optionally
// carries SMTP credentials for email notifications. Configurations are
// built once (interactively or from the config file), validated, and
// never mutated afterwards. The durable form is a JSON file that
// round-trips losslessly, keyed by selection index to stay compatible
// with configs written by earlier versions.
package config
