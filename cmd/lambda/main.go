package main

import (
	"time"

	"accesslogstats/internal/config"
	"accesslogstats/internal/logcollector"
	"accesslogstats/internal/parser"
	"accesslogstats/internal/processor"
	"accesslogstats/internal/s3writer"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	c, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Error parsing configuration")
	}

	if c.Debug {
		log.SetLevel(log.DebugLevel)
	}

	// Initialize AWS session
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(c.AwsRegion),
	}))

	lc, err := logcollector.New(sess, c)
	if err != nil {
		log.WithError(err).Fatal("Error creating log collector")
	}

	var writer s3writer.Writer
	if c.ReportBucket != "" {
		writer = s3writer.NewS3Writer(
			s3manager.NewUploader(sess),
			c.ReportBucket,
			c.ReportS3Prefix,
		)
	}

	// Create & start lambda handler
	lh := &lambdaHandler{
		processor:  processor.NewProcessor(lc, parser.NewAccessLogParser()),
		writer:     writer,
		defaultURL: c.URL,
		now:        time.Now,
		newRunID: func() string {
			return uuid.NewV4().String()
		},
	}
	lambda.Start(lh.Handler)
}
