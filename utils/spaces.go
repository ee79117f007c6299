package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/VindiceCode/plantprince/models"
)

const backupPrefix = "request-logs/"

// SpacesConfig holds the DigitalOcean Spaces connection settings.
type SpacesConfig struct {
	Key      string
	Secret   string
	Endpoint string
	Region   string
	Bucket   string
}

// SpacesClient backs up request logs to a Spaces bucket. A nil client
// is valid and skips every operation.
type SpacesClient struct {
	svc    *s3.S3
	bucket string
}

// NewSpacesClient builds a client, or nil when the settings are incomplete.
func NewSpacesClient(cfg SpacesConfig) (*SpacesClient, error) {
	if cfg.Key == "" || cfg.Secret == "" || cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, nil
	}
	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.Key, cfg.Secret, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
		// Backups run in the request path, so they must not hang or retry.
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		MaxRetries: aws.Int(0),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spaces session: %w", err)
	}
	return &SpacesClient{svc: s3.New(sess), bucket: cfg.Bucket}, nil
}

// Enabled reports whether backups will actually be written.
func (s *SpacesClient) Enabled() bool {
	return s != nil
}

// BackupRequestLog writes one audit entry as JSON under the
// request-logs/YYYY/MM/DD/ prefix and returns the object key.
func (s *SpacesClient) BackupRequestLog(entry *models.RequestLog) (string, error) {
	if s == nil {
		return "", nil
	}
	body, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("failed to encode log entry: %w", err)
	}

	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	key := fmt.Sprintf("%s%04d/%02d/%02d/%s_%s.json",
		backupPrefix, ts.Year(), int(ts.Month()), ts.Day(), entry.RequestID, ts.Format("150405"))

	_, err = s.svc.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]*string{
			"location":    aws.String(entry.Location),
			"garden-type": aws.String(entry.GardenType),
			"success":     aws.String(strconv.FormatBool(entry.Success)),
			"timestamp":   aws.String(ts.Format(time.RFC3339)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload log backup: %w", err)
	}
	return key, nil
}

// ListBackups returns up to max object keys under the backup prefix.
func (s *SpacesClient) ListBackups(max int64) ([]string, error) {
	if s == nil {
		return nil, nil
	}
	out, err := s.svc.ListObjectsV2(&s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(backupPrefix),
		MaxKeys: aws.Int64(max),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list log backups: %w", err)
	}
	keys := make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		keys = append(keys, aws.StringValue(obj.Key))
	}
	return keys, nil
}
