package main

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"accesslogstats/internal/config"
	"accesslogstats/internal/logcollector"
	"accesslogstats/internal/parser"
	"accesslogstats/internal/processor"
	"accesslogstats/internal/report"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app       = kingpin.New("accesslogstats", "Print image, browser and hourly statistics of a CSV access log.")
	sourceURL = app.Flag("url", "URL to the datafile (http, https or s3).").Required().URL()
)

func init() {
	app.Validate(func(*kingpin.Application) error {
		return validateSource(*sourceURL)
	})
}

// validateSource rejects relative URLs, they cannot be downloaded
func validateSource(source *url.URL) error {
	if source == nil {
		return nil
	}
	if source.Scheme == "" || source.Host == "" {
		return fmt.Errorf("--url must be an absolute URL, got %q", source.String())
	}
	return nil
}

func main() {
	_, err := app.Parse(os.Args[1:])
	if err != nil {
		app.FatalUsage("%s", err)
	}

	c, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Error parsing configuration")
	}

	if c.Debug {
		log.SetLevel(log.DebugLevel)
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(c.AwsRegion),
	})
	if err != nil {
		log.WithError(err).Fatal("Error creating AWS session")
	}

	lc, err := logcollector.New(sess, c)
	if err != nil {
		log.WithError(err).Fatal("Error creating log collector")
	}

	p := processor.NewProcessor(lc, parser.NewAccessLogParser())

	stats, err := p.Process(context.Background(), *sourceURL)
	if err != nil {
		log.WithError(err).Fatal("Error downloading the data")
	}

	err = report.Write(os.Stdout, stats)
	if err != nil {
		log.WithError(err).Fatal("Error writing report")
	}
}
