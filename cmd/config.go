package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ClaimTTL is how long an accepted task may sit without a collection
	// scan before the background sweep returns it to the pool.
	ClaimTTL time.Duration

	// SubordinateRequireApproval makes new appointments start in the
	// pending status until a superior approves them.
	SubordinateRequireApproval bool
}
