package config

import (
	"flag"
	"os"
	"time"

	"github.com/mbalakin/seizurelog/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (e.g., ":9090")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, seconds
//	-r int      session validity, days
//	-q int      per-subscriber delivery queue depth
//	-i int      idle subscription timeout, minutes
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in their natural unit and then
//     converted to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-s", "-t", "-r", "-q", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.EndpointAddrMetrics, "m", config.EndpointAddrMetrics, "address and port for the metrics endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValiditySeconds := fs.Int("t", int(config.AccessTokenValidityDuration.Seconds()), "access_token_validity_duration (in seconds)")
	sessionValidityDays := fs.Int("r", int(config.SessionValidityDuration.Hours()/24), "session_validity_duration (in days)")

	fs.IntVar(&config.SubscriberQueueDepth, "q", config.SubscriberQueueDepth, "per-subscriber delivery queue depth")
	idleTimeoutMinutes := fs.Int("i", int(config.IdleSubscriptionTimeout.Minutes()), "idle subscription timeout (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValiditySeconds) * time.Second
	config.SessionValidityDuration = time.Duration(*sessionValidityDays) * 24 * time.Hour
	config.IdleSubscriptionTimeout = time.Duration(*idleTimeoutMinutes) * time.Minute
}
