package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const Prefix = "LOGSTATS"

// Config holds the environment configuration shared by the CLI and the lambda function
type Config struct {
	Debug          bool          `envconfig:"DEBUG" default:"false" desc:"Enable debug mode."`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s" desc:"Timeout for downloading the log, 0 means no timeout"`
	AwsRegion      string        `envconfig:"AWS_REGION" default:"us-east-1" desc:"AWS region used for S3 sources and request signing"`
	SigV4Service   string        `envconfig:"SIGV4_SERVICE" desc:"Sign HTTP requests with AWS SigV4 for this service"`
	URL            string        `envconfig:"URL" desc:"Default log URL for the lambda function"`
	ReportBucket   string        `envconfig:"REPORT_BUCKET" desc:"Bucket to archive rendered reports to"`
	ReportS3Prefix string        `envconfig:"REPORT_PREFIX" default:"reports" desc:"Key prefix for archived reports"`
}

// Load reads the configuration from LOGSTATS_* environment variables
func Load() (*Config, error) {
	var c Config
	err := envconfig.Process(Prefix, &c)
	if err != nil {
		return nil, fmt.Errorf("could not process configuration: %w", err)
	}
	if c.HTTPTimeout < 0 {
		return nil, fmt.Errorf("%s_HTTP_TIMEOUT must not be negative", Prefix)
	}
	return &c, nil
}
