package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/battleapi/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    HTTP bind address (e.g., ":8000")
//	-d string    PostgreSQL DSN
//	-s string    JWT HMAC secret key
//	-j string    JWT signing algorithm (e.g., "HS256")
//	-t int       access token validity, minutes
//	-b int       bcrypt cost factor
//	-o string    comma-separated CORS origins
//	-gi string   GitHub OAuth client ID
//	-gs string   GitHub OAuth client secret
//
// os.Args is first filtered with flagx.FilterArgs so flags owned by other
// components do not break parsing. The duration flag is accepted as an
// integer in minutes and converted to a time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-j", "-t", "-b", "-o", "-gi", "-gs"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.JWTAlgorithm, "j", config.JWTAlgorithm, "JWT signing algorithm")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost factor")
	fs.StringVar(&config.CORSOrigins, "o", config.CORSOrigins, "comma-separated CORS origins")
	fs.StringVar(&config.GithubClientID, "gi", config.GithubClientID, "GitHub OAuth client ID")
	fs.StringVar(&config.GithubClientSecret, "gs", config.GithubClientSecret, "GitHub OAuth client secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
