package archive

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(b))
	return &s3.PutObjectOutput{}, nil
}

var fixed = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

func TestArchive_WritesJSONLines(t *testing.T) {
	fp := &fakePutter{}
	a := NewS3ArchiverWithClient(fp, "forensics", func() time.Time { return fixed })

	err := a.Archive(context.Background(), []*models.RefreshToken{
		{ID: "1", JTI: "j1", PrincipalID: "u1", TokenHash: "h1", Revoked: true},
		{ID: "2", JTI: "j2", PrincipalID: "u1", TokenHash: "h2"},
	})
	require.NoError(t, err)
	require.Len(t, fp.inputs, 1)

	assert.Equal(t, "forensics", aws.ToString(fp.inputs[0].Bucket))
	assert.True(t, strings.HasPrefix(aws.ToString(fp.inputs[0].Key), "refresh-tokens/2026/02/03/"))

	sc := bufio.NewScanner(strings.NewReader(fp.bodies[0]))
	lines := 0
	for sc.Scan() {
		lines++
	}
	assert.Equal(t, 2, lines)
	assert.Contains(t, fp.bodies[0], `"jti":"j1"`)
}

func TestArchive_EmptyBatchSkipsUpload(t *testing.T) {
	fp := &fakePutter{}
	a := NewS3ArchiverWithClient(fp, "b", nil)
	require.NoError(t, a.Archive(context.Background(), nil))
	assert.Empty(t, fp.inputs)
}

func TestArchive_PutError(t *testing.T) {
	fp := &fakePutter{err: errors.New("denied")}
	a := NewS3ArchiverWithClient(fp, "b", nil)
	err := a.Archive(context.Background(), []*models.RefreshToken{{ID: "1"}})
	assert.ErrorIs(t, err, fp.err)
}

func TestNewS3Archiver_AppliesOptions(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{Region: lo.Region}, nil
	}
	var applied s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) Putter {
		for _, fn := range optFns {
			fn(&applied)
		}
		return &fakePutter{}
	}

	a, err := NewS3Archiver(context.Background(), Options{
		Region: "us-east-1", AccessKey: "minio", SecretKey: "minio123",
		BaseEndpoint: "http://127.0.0.1:9000", Bucket: "b",
	})
	require.NoError(t, err)
	assert.Equal(t, "b", a.bucket)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(applied.BaseEndpoint))
	assert.True(t, applied.UsePathStyle)
}

func TestNewS3Archiver_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := NewS3Archiver(context.Background(), Options{})
	assert.Error(t, err)
}
