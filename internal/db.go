package internal

import (
	"fmt"

	"feltpoker.com/server/util"
)

// GetHandHistoryConnStr builds the connection string for the hand
// history database from the environment.
func GetHandHistoryConnStr() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		util.Env.GetPostgresHost(),
		util.Env.GetPostgresPort(),
		util.Env.GetPostgresUser(),
		util.Env.GetPostgresPW(),
		util.Env.GetPostgresDB(),
		util.Env.GetPostgresSSLMode(),
	)
}
