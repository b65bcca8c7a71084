package config

import (
	"fmt"
	"time"

	"github.com/greenmarket/agridash/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Config carries everything the process reads from the environment.
type Config struct {
	DBConnection string
	ListenAddr   string
	QueryTimeout time.Duration
	GeoJSONPath  string

	AthenaDatabase       string
	AthenaWorkgroup      string
	AthenaOutputLocation string
	AWSRegion            string

	RDSHost     string
	RDSPort     string
	RDSUser     string
	RDSPassword string
	RDSDB       string
}

// Load reads the environment through viper. Defaults mirror the ones the
// warehouse team provisioned for the shared workgroup.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperDBConnection, "athena")
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperQueryTimeout, "2m")
	viper.SetDefault(constants.ViperGeoJSONPath, "assets/retail_regions.json")
	viper.SetDefault(constants.ViperAthenaDatabase, "team3_gold")
	viper.SetDefault(constants.ViperAthenaWorkgroup, "team3-wg")
	viper.SetDefault(constants.ViperAthenaOutputLocation, "s3://team3-batch/gold/athena-results/")
	viper.SetDefault(constants.ViperAWSRegion, "ap-northeast-2")
	viper.SetDefault(constants.ViperRDSPort, "5432")

	cfg := &Config{
		DBConnection:         viper.GetString(constants.ViperDBConnection),
		ListenAddr:           viper.GetString(constants.ViperListenAddr),
		QueryTimeout:         viper.GetDuration(constants.ViperQueryTimeout),
		GeoJSONPath:          viper.GetString(constants.ViperGeoJSONPath),
		AthenaDatabase:       viper.GetString(constants.ViperAthenaDatabase),
		AthenaWorkgroup:      viper.GetString(constants.ViperAthenaWorkgroup),
		AthenaOutputLocation: viper.GetString(constants.ViperAthenaOutputLocation),
		AWSRegion:            viper.GetString(constants.ViperAWSRegion),
		RDSHost:              viper.GetString(constants.ViperRDSHost),
		RDSPort:              viper.GetString(constants.ViperRDSPort),
		RDSUser:              viper.GetString(constants.ViperRDSUser),
		RDSPassword:          viper.GetString(constants.ViperRDSPassword),
		RDSDB:                viper.GetString(constants.ViperRDSDB),
	}

	switch cfg.DBConnection {
	case constants.BackendAthena, constants.BackendRDS:
	default:
		return nil, fmt.Errorf("unsupported db_connection %q, use 'athena' or 'rds'", cfg.DBConnection)
	}

	return cfg, nil
}

// PostgresDSN assembles the pgx connection string for the rds backend.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.RDSUser, c.RDSPassword, c.RDSHost, c.RDSPort, c.RDSDB)
}
