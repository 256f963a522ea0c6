package redisx

import "time"

const (
	// Catalog list cache: games:all -> JSON array of games.
	KeyGamesList = "games:all"
)

var (
	TTLGamesCache = 5 * time.Minute
)
