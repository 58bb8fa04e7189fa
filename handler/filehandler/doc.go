// Package filehandler provides a sink that appends rendered lines to a
// file. Rotation and retention are left to external tools such as
// logrotate; reopen the sink after the file has been moved.
package filehandler
