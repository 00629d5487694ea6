package utils

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// ImageStore uploads profile pictures to S3. A nil *ImageStore is valid
// and means "no bucket configured"; callers then keep the image inline.
type ImageStore struct {
	client *s3.Client
	bucket string
	region string
}

// NewImageStore returns nil (and no error) when bucket is empty.
func NewImageStore(ctx context.Context, region, bucket string) (*ImageStore, error) {
	if bucket == "" {
		return nil, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	return &ImageStore{client: s3.NewFromConfig(cfg), bucket: bucket, region: region}, nil
}

// Upload stores the image under a fresh key and returns its public URL.
func (st *ImageStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		} else if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
			ext = "." + parts[1]
		}
	}

	key := fmt.Sprintf("profile-pictures/%s%s", uuid.NewString(), ext)

	_, err := st.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(st.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", st.bucket, st.region, key), nil
}
