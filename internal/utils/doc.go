// Package utils holds the low-level helpers shared by aitext providers: a
// synchronous JSON POST round-trip ([DoPostSync]) and log-safe string
// truncation ([TruncateString]).
package utils
