package imagerelay

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/baharkarakas/mini-linkedin/internal/config"
)

// PutObjectAPI is the slice of *s3.Client the relay calls.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client builds a path-style client, which works against both AWS and
// S3-compatible servers such as MinIO.
func NewS3Client(ctx context.Context, c config.S3Config) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = true
	}), nil
}

type S3Relay struct {
	client    PutObjectAPI
	bucket    string
	folder    string
	publicURL string
	maxBytes  int64
	maxWidth  int
	maxHeight int
	now       func() time.Time
}

func NewS3Relay(client PutObjectAPI, c config.S3Config, maxBytes int64) *S3Relay {
	base := c.PublicURL
	if base == "" {
		base = strings.TrimRight(c.Endpoint, "/") + "/" + c.Bucket
	}
	return &S3Relay{
		client:    client,
		bucket:    c.Bucket,
		folder:    strings.Trim(c.Folder, "/"),
		publicURL: strings.TrimRight(base, "/"),
		maxBytes:  maxBytes,
		maxWidth:  DefaultMaxWidth,
		maxHeight: DefaultMaxHeight,
		now:       time.Now,
	}
}

func (r *S3Relay) UploadImage(ctx context.Context, data []byte, mimeType string) (Upload, error) {
	img, err := Validate(data, mimeType, r.maxBytes)
	if err != nil {
		return Upload{}, err
	}
	data, img, err = Fit(data, img, r.maxWidth, r.maxHeight)
	if err != nil {
		return Upload{}, fmt.Errorf("resize: %w", err)
	}

	d := r.now().UTC()
	publicID := fmt.Sprintf("%04d/%02d/%s", d.Year(), int(d.Month()), uuid.NewString())
	if r.folder != "" {
		publicID = r.folder + "/" + publicID
	}
	key := publicID + img.Ext

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(img.MIMEType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return Upload{}, fmt.Errorf("put object %s: %w", key, err)
	}
	return Upload{URL: r.publicURL + "/" + key, PublicID: publicID}, nil
}
