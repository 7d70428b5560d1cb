package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/battleapi/internal/flagx"
	"github.com/dmitrijs2005/battleapi/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. Duration fields accept both strings like "30m"
// and integer nanoseconds. After unmarshalling, its fields are copied
// into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	JWTAlgorithm                string         `json:"jwt_algorithm"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  int            `json:"bcrypt_cost"`
	CORSOrigins                 string         `json:"cors_origins"`
	GithubClientID              string         `json:"github_client_id"`
	GithubClientSecret          string         `json:"github_client_secret"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is given the
// Config is left untouched. An unreadable or invalid file panics: the
// process cannot run on half-loaded settings.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.JWTAlgorithm = c.JWTAlgorithm
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.BcryptCost = c.BcryptCost
	config.CORSOrigins = c.CORSOrigins
	config.GithubClientID = c.GithubClientID
	config.GithubClientSecret = c.GithubClientSecret
}
