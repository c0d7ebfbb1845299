package logcollector

import (
	"net/http"
	"testing"

	"accesslogstats/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsSigningClient(t *testing.T) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String("us-east-1"),
		Credentials: testCredentials,
	})
	require.NoError(t, err)

	router, err := New(sess, &config.Config{AwsRegion: "us-east-1"})
	require.NoError(t, err)
	httpCollector := router.collectors["https"].(*HTTPLogCollector)
	assert.IsType(t, new(http.Client), httpCollector.httpClient)
	assert.IsType(t, new(S3LogCollector), router.collectors["s3"])

	router, err = New(sess, &config.Config{AwsRegion: "us-east-1", SigV4Service: "execute-api"})
	require.NoError(t, err)
	httpCollector = router.collectors["https"].(*HTTPLogCollector)
	assert.IsType(t, new(AWSHttpClient), httpCollector.httpClient)
}

func TestNewSessionWithoutRegion(t *testing.T) {
	// Signing takes its region from the configuration, not from the session
	sess, err := session.NewSession(&aws.Config{Credentials: testCredentials})
	require.NoError(t, err)

	_, err = New(sess, &config.Config{SigV4Service: "execute-api"})
	assert.Error(t, err)

	router, err := New(sess, &config.Config{SigV4Service: "execute-api", AwsRegion: "eu-west-1"})
	require.NoError(t, err)
	assert.NotNil(t, router)
}
