package logcollector

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AWSHttpClient signs GET requests with SigV4 before sending them, for logs
// served from IAM protected endpoints such as API Gateway or S3 over HTTPS.
type AWSHttpClient struct {
	next    HTTPClient
	signer  *v4.Signer
	service string
	region  string
	now     func() time.Time
}

func NewAWSHttpClient(creds *credentials.Credentials, next HTTPClient, service string, region string) (*AWSHttpClient, error) {
	if creds == nil {
		return nil, errors.New("no AWS credentials to sign requests with")
	}
	if service == "" || region == "" {
		return nil, fmt.Errorf("signing requests needs a service and a region, got %q and %q", service, region)
	}

	return &AWSHttpClient{
		next:    next,
		signer:  v4.NewSigner(creds),
		service: service,
		region:  region,
		now:     time.Now,
	}, nil
}

func (a *AWSHttpClient) Do(req *http.Request) (*http.Response, error) {
	if req.Body != nil && req.Body != http.NoBody {
		return nil, fmt.Errorf("cannot sign %s request with a body", req.Method)
	}

	_, err := a.signer.Sign(req, nil, a.service, a.region, a.now())
	if err != nil {
		return nil, fmt.Errorf("could not sign request for %s in %s: %w", a.service, a.region, err)
	}

	return a.next.Do(req)
}
