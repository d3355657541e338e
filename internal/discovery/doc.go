// Package discovery scans the plugins directory of an installation root. It
// lists the direct children, turns each into a plugin.Entry and groups them
// into a registry so callers can tell whether any plugin is installed more
// than once.
package discovery
