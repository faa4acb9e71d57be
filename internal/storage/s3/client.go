package s3

import (
	"fmt"
	"time"

	"key-catalog/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const (
	emptyAWSSessionToken = ""

	fieldKey         = "key"
	fieldContentType = "Content-Type"

	publicURLFmt = "https://%s.s3.%s.amazonaws.com/%s"

	errFailedCreateAWSSessionFmt        = "failed to create AWS session: %w"
	errFailedGeneratePresignedUploadFmt = "failed to generate presigned upload URL: %w"
)

type Client struct {
	svc       *s3.S3
	bucket    string
	region    string
	urlExpiry time.Duration
}

// PresignedUpload is the write-once upload authorization handed to the
// browser: the URL to send bytes to plus the fields describing the upload,
// including the eventual object key.
type PresignedUpload struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

func NewClient(cfg *config.AWSConfig, urlExpiry time.Duration) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			emptyAWSSessionToken,
		),
	})

	if err != nil {
		return nil, fmt.Errorf(errFailedCreateAWSSessionFmt, err)
	}

	return &Client{
		svc:       s3.New(sess),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		urlExpiry: urlExpiry,
	}, nil
}

// GeneratePresignedUpload creates a time-limited upload authorization scoped
// to exactly this key and content type. The server never sees the file
// bytes; the browser uploads directly to storage.
func (c *Client) GeneratePresignedUpload(objectKey, contentType string) (*PresignedUpload, error) {
	req, _ := c.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	})

	url, err := req.Presign(c.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf(errFailedGeneratePresignedUploadFmt, err)
	}

	return &PresignedUpload{
		URL: url,
		Fields: map[string]string{
			fieldContentType: contentType,
			fieldKey:         objectKey,
		},
	}, nil
}

// PublicURL builds the publicly readable URL for a stored object. Objects
// are assumed publicly readable; no signed read URLs are issued.
func (c *Client) PublicURL(objectKey string) string {
	return fmt.Sprintf(publicURLFmt, c.bucket, c.region, objectKey)
}
