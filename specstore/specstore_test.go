package specstore

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"
)

type mockS3Client struct {
	createBucketErr error
	createdBuckets  []string
	puts            []*s3.PutObjectInput
}

func (m *mockS3Client) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	if m.createBucketErr != nil {
		return nil, m.createBucketErr
	}
	m.createdBuckets = append(m.createdBuckets, awssdk.ToString(params.Bucket))
	return &s3.CreateBucketOutput{}, nil
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.puts = append(m.puts, params)
	return &s3.PutObjectOutput{}, nil
}

type mockSTSClient struct {
	account string
	calls   int
}

func (m *mockSTSClient) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	m.calls++
	return &sts.GetCallerIdentityOutput{Account: awssdk.String(m.account)}, nil
}

func newTestStore(s3c *mockS3Client, stsc *mockSTSClient, region, bucket string) *Store {
	st := NewStore(s3c, stsc, region, bucket, zerolog.Nop())
	st.now = func() time.Time { return time.Unix(1700000000, 0) }
	return st
}

func TestUploadKeyLayout(t *testing.T) {
	s3c := &mockS3Client{}
	st := newTestStore(s3c, &mockSTSClient{account: "123456789012"}, "us-east-1", "my-bucket")

	uri, err := st.Upload(context.Background(), map[string]any{"openapi": "3.0.3"}, "nasa", "gw-123")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	pattern := regexp.MustCompile(`^s3://my-bucket/gateways/gw-123/tools/nasa/1700000000-[0-9a-f]{32}\.json$`)
	if !pattern.MatchString(uri) {
		t.Errorf("unexpected URI layout: %s", uri)
	}

	if len(s3c.puts) != 1 {
		t.Fatalf("expected 1 PutObject call, got %d", len(s3c.puts))
	}
	if ct := awssdk.ToString(s3c.puts[0].ContentType); ct != "application/json" {
		t.Errorf("expected application/json content type, got %s", ct)
	}
}

func TestUploadDefaultBucketName(t *testing.T) {
	s3c := &mockS3Client{}
	stsc := &mockSTSClient{account: "123456789012"}
	st := newTestStore(s3c, stsc, "eu-west-1", "")

	uri, err := st.Upload(context.Background(), map[string]any{"openapi": "3.0.3"}, "tool", "gw-1")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	want := "s3://agentcore-gateway-targets-openapi-specs-123456789012-eu-west-1/"
	if len(uri) < len(want) || uri[:len(want)] != want {
		t.Errorf("expected account-derived bucket in URI, got %s", uri)
	}
	if stsc.calls != 1 {
		t.Errorf("expected 1 STS call, got %d", stsc.calls)
	}
}

func TestUploadNoLocationConstraintInUsEast1(t *testing.T) {
	s3c := &mockS3Client{}
	st := newTestStore(s3c, &mockSTSClient{account: "1"}, "us-east-1", "b")

	if _, err := st.Upload(context.Background(), map[string]any{"openapi": "3.0.3"}, "t", "g"); err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	// CreateBucket was called without a configuration; the mock records the
	// bucket only when the call succeeds.
	if len(s3c.createdBuckets) != 1 || s3c.createdBuckets[0] != "b" {
		t.Errorf("expected bucket b created, got %v", s3c.createdBuckets)
	}
}

func TestUploadBucketAlreadyOwned(t *testing.T) {
	s3c := &mockS3Client{createBucketErr: &s3types.BucketAlreadyOwnedByYou{}}
	st := newTestStore(s3c, &mockSTSClient{account: "1"}, "us-east-1", "b")

	if _, err := st.Upload(context.Background(), map[string]any{"openapi": "3.0.3"}, "t", "g"); err != nil {
		t.Fatalf("expected existing bucket to be tolerated, got: %v", err)
	}
	if len(s3c.puts) != 1 {
		t.Errorf("expected upload to proceed")
	}
}

func TestUploadBucketCreateFailure(t *testing.T) {
	s3c := &mockS3Client{createBucketErr: fmt.Errorf("access denied")}
	st := newTestStore(s3c, &mockSTSClient{account: "1"}, "us-east-1", "b")

	if _, err := st.Upload(context.Background(), map[string]any{"openapi": "3.0.3"}, "t", "g"); err == nil {
		t.Fatal("expected error when bucket creation fails")
	}
	if len(s3c.puts) != 0 {
		t.Errorf("expected no upload after bucket failure")
	}
}
