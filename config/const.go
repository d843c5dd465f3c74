package config

import "strings"

// AppVersion is the version of the application, set at build time.
var AppVersion = "0.1.0"

// AppName is the name of the application.
const AppName = "Wiggle"

// AppID is the unique application identifier used for preferences storage.
const AppID = "io.github.dixieflatline76.wiggle"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// UserAgent returns the User-Agent sent with every request to the GIF service.
func UserAgent() string {
	return AppName + "/" + AppVersion
}
