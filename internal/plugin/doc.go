// Package plugin turns the name of one plugins-directory entry into a logical
// plugin name and version.
package plugin
