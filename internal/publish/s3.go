package publish

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/headless/internal/errors"
)

// ObjectPutter is the part of *s3.Client the publisher uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config configures an S3 client.
type S3Config struct {
	Region string

	// Endpoint overrides the S3 endpoint, for S3-compatible stores. Setting
	// it switches to path-style addressing.
	Endpoint string
}

// NewS3Client creates an S3 client. Credentials come from the standard
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables.
func NewS3Client(cfg S3Config) (*s3.Client, error) {
	if cfg.Region == "" {
		return nil, errors.New("E403").WithDetail("no region configured")
	}
	creds, err := envCredentials(os.Getenv)
	if err != nil {
		return nil, err
	}

	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(creds),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts), nil
}

func envCredentials(getenv func(string) string) (aws.CredentialsProviderFunc, error) {
	id, secret := getenv("AWS_ACCESS_KEY_ID"), getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return nil, errors.New("E403").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	creds := aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}
	return func(context.Context) (aws.Credentials, error) {
		return creds, nil
	}, nil
}

// Publisher uploads a built gallery to a bucket.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *slog.Logger
}

// NewPublisher creates a publisher for bucket. Object keys are the file
// paths relative to the build directory, under prefix.
func NewPublisher(client ObjectPutter, bucket, prefix string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}
}

// Key returns the object key for a path relative to the build directory.
func (p *Publisher) Key(rel string) string {
	rel = filepath.ToSlash(rel)
	if p.prefix == "" {
		return rel
	}
	return path.Join(p.prefix, rel)
}

// Publish uploads every file under dir and returns the uploaded keys.
func (p *Publisher) Publish(ctx context.Context, dir string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		key := p.Key(rel)
		if err := p.put(ctx, file, key); err != nil {
			return err
		}
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		var he *errors.HeadlessError
		if errors.As(err, &he) {
			return keys, err
		}
		return keys, errors.New("E401").WithDetail(dir).Wrap(err)
	}
	p.logger.Info("published", "bucket", p.bucket, "prefix", p.prefix, "objects", len(keys))
	return keys, nil
}

func (p *Publisher) put(ctx context.Context, file, key string) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.New("E401").WithDetail(file).Wrap(err)
	}
	defer f.Close()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType(file)),
	})
	if err != nil {
		return errors.New("E402").WithDetail(fmt.Sprintf("s3://%s/%s", p.bucket, key)).Wrap(err)
	}
	p.logger.Debug("uploaded", "key", key)
	return nil
}

func contentType(file string) string {
	if ct := mime.TypeByExtension(filepath.Ext(file)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
