// Package specstore stores OpenAPI spec documents in S3 for gateway targets
// to reference. Objects are keyed by gateway and tool so all versions of a
// tool's spec can be listed or cleaned up with a single prefix.
package specstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gurre/agentcore-gateway/aws"
	json "github.com/goccy/go-json"
)

// Store uploads spec documents to a lazily created S3 bucket.
type Store struct {
	s3Client  aws.S3Client
	stsClient aws.STSClient
	region    string
	bucket    string // explicit bucket name; account-derived default when empty
	logger    zerolog.Logger

	now func() time.Time
}

// NewStore creates a Store. If bucket is empty, a per-account default name is
// derived from the caller identity on first upload.
func NewStore(s3Client aws.S3Client, stsClient aws.STSClient, region, bucket string, logger zerolog.Logger) *Store {
	return &Store{
		s3Client:  s3Client,
		stsClient: stsClient,
		region:    region,
		bucket:    bucket,
		logger:    logger,
		now:       time.Now,
	}
}

// Upload serializes the spec document and writes it under
// gateways/{gatewayID}/tools/{toolName}/{timestamp}-{randomSuffix}.json,
// creating the bucket if it does not exist. It returns the s3:// URI of the
// written object.
func (s *Store) Upload(ctx context.Context, doc map[string]any, toolName, gatewayID string) (string, error) {
	bucket, err := s.ensureBucket(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to serialize spec: %w", err)
	}

	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")
	key := fmt.Sprintf("gateways/%s/tools/%s/%d-%s.json", gatewayID, toolName, s.now().Unix(), suffix)

	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(bucket),
		Key:         awssdk.String(key),
		Body:        bytes.NewReader(body),
		ContentType: awssdk.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload spec to s3://%s/%s: %w", bucket, key, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", bucket, key)
	s.logger.Info().Str("uri", uri).Msg("uploaded OpenAPI spec")
	return uri, nil
}

// ensureBucket resolves the bucket name and creates the bucket if needed.
// An existing bucket owned by this or another account is not an error; the
// subsequent PutObject surfaces any real access problem.
func (s *Store) ensureBucket(ctx context.Context) (string, error) {
	bucket := s.bucket
	if bucket == "" {
		identity, err := s.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		if err != nil {
			return "", fmt.Errorf("failed to resolve account for bucket name: %w", err)
		}
		bucket = fmt.Sprintf("agentcore-gateway-targets-openapi-specs-%s-%s", awssdk.ToString(identity.Account), s.region)
	}

	input := &s3.CreateBucketInput{Bucket: awssdk.String(bucket)}
	// us-east-1 rejects an explicit location constraint.
	if s.region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(s.region),
		}
	}

	_, err := s.s3Client.CreateBucket(ctx, input)
	if err != nil {
		var owned *s3types.BucketAlreadyOwnedByYou
		var exists *s3types.BucketAlreadyExists
		if errors.As(err, &owned) || errors.As(err, &exists) {
			return bucket, nil
		}
		return "", fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}

	s.logger.Info().Str("bucket", bucket).Msg("created spec bucket")
	return bucket, nil
}
