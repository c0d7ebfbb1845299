package logcollector

import (
	"fmt"
	"net/http"

	"accesslogstats/internal/config"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"
)

// New wires the HTTP(S) and S3 collectors behind a SchemeRouter
func New(sess *session.Session, c *config.Config) (*SchemeRouter, error) {
	var client HTTPClient = &http.Client{Timeout: c.HTTPTimeout}

	if c.SigV4Service != "" {
		logrus.WithField("service", c.SigV4Service).WithField("region", c.AwsRegion).Debug("Signing requests with SigV4")

		signing, err := NewAWSHttpClient(sess.Config.Credentials, client, c.SigV4Service, c.AwsRegion)
		if err != nil {
			return nil, fmt.Errorf("could not create signing client: %w", err)
		}
		client = signing
	}

	return NewSchemeRouter(
		NewHTTPLogCollector(client),
		NewS3LogCollector(s3.New(sess)),
	), nil
}
