// Package storage manages the plugin data folder: it creates the folder on
// startup, resolves file paths inside it and takes timestamped backups of
// data files. Backups are written to a temporary file and renamed into place.
package storage
