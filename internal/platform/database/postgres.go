package database

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
)

// NewPostgresDB opens a connection pool, retrying while the database boots.
func NewPostgresDB(url string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		log.Info().Int("attempt", i).Int("max", maxRetries).Msg("connecting to database")
		db, err = sql.Open("postgres", url)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Info().Msg("database connected")
			return db, nil
		}

		log.Warn().Err(err).Msg("database not ready, waiting 2 seconds")
		time.Sleep(2 * time.Second)
	}

	return nil, err
}
