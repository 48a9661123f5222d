package storage

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Provider serves videos from an S3-compatible bucket (AWS, B2, MinIO).
type S3Provider struct {
	api    s3iface.S3API
	bucket string
}

func NewS3Provider(api s3iface.S3API, bucket string) *S3Provider {
	return &S3Provider{api: api, bucket: bucket}
}

func (p *S3Provider) Get(key string) (*VideoObject, error) {
	out, err := p.api.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}

	obj := &VideoObject{
		Body:        out.Body,
		ContentType: "video/mp4",
	}
	if out.ContentLength != nil {
		obj.ContentLength = *out.ContentLength
	}
	if out.ContentType != nil && *out.ContentType != "" {
		obj.ContentType = *out.ContentType
	}
	if out.LastModified != nil {
		obj.LastModified = *out.LastModified
	} else {
		obj.LastModified = time.Now()
	}
	return obj, nil
}

func (p *S3Provider) Exists(key string) (bool, error) {
	_, err := p.api.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case s3.ErrCodeNoSuchKey, "NotFound":
				return false, nil
			}
		}
		return false, err
	}
	return true, nil
}

func (p *S3Provider) List() ([]string, error) {
	var keys []string
	err := p.api.ListObjectsV2Pages(&s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, aws.StringValue(obj.Key))
		}
		return true
	})
	return keys, err
}
