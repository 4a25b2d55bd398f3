//go:build race

package http_server

const raceEnabled = true
