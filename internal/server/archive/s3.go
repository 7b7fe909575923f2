// Package archive writes swept refresh token records to object storage so
// that session history survives deletion from the database.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/google/uuid"
)

// Options configures the S3 (or MinIO) connection.
type Options struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	Bucket       string
}

// Putter is the subset of *s3.Client used by the archiver.
type Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// seams for tests
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) Putter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Archiver stores each sweep batch as one JSON-lines object.
type S3Archiver struct {
	client Putter
	bucket string
	now    func() time.Time
}

// NewS3Archiver builds a client with static credentials.
func NewS3Archiver(ctx context.Context, o Options) (*S3Archiver, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(o.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(opts *s3.Options) {
		if o.BaseEndpoint != "" {
			opts.BaseEndpoint = aws.String(o.BaseEndpoint)
			opts.UsePathStyle = true
		}
	})
	return NewS3ArchiverWithClient(client, o.Bucket, nil), nil
}

// NewS3ArchiverWithClient allows injecting a test client.
func NewS3ArchiverWithClient(client Putter, bucket string, now func() time.Time) *S3Archiver {
	if now == nil {
		now = time.Now
	}
	return &S3Archiver{client: client, bucket: bucket, now: now}
}

type record struct {
	ID            string     `json:"id"`
	JTI           string     `json:"jti"`
	PrincipalID   string     `json:"principal_id"`
	ClientID      *string    `json:"client_id,omitempty"`
	TokenHash     string     `json:"token_hash"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUsedAt    *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt     time.Time  `json:"expires_at"`
	Revoked       bool       `json:"revoked"`
	ReplacedByJTI *string    `json:"replaced_by_jti,omitempty"`
	IPAddress     *string    `json:"ip_address,omitempty"`
	UserAgent     *string    `json:"user_agent,omitempty"`
}

// ObjectKey returns the key a batch written at t is stored under.
func ObjectKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("refresh-tokens/%d/%02d/%02d/%v.jsonl", t.Year(), t.Month(), t.Day(), uuid.New())
}

// Archive uploads records. An empty batch writes nothing.
func (a *S3Archiver) Archive(ctx context.Context, records []*models.RefreshToken) error {
	if len(records) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, t := range records {
		if err := enc.Encode(record{
			ID: t.ID, JTI: t.JTI, PrincipalID: t.PrincipalID, ClientID: t.ClientID,
			TokenHash: t.TokenHash, CreatedAt: t.CreatedAt, LastUsedAt: t.LastUsedAt,
			ExpiresAt: t.ExpiresAt, Revoked: t.Revoked, ReplacedByJTI: t.ReplacedByJTI,
			IPAddress: t.IPAddress, UserAgent: t.UserAgent,
		}); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}

	key := ObjectKey(a.now())
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/x-ndjson"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
