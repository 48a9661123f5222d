package storage

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/drohack/GACKfilesQuest/internal/config"
)

// Client is the video store handed to the handlers.
type Client struct {
	backend Provider
}

func New(cfg *config.Config) *Client {
	var backend Provider

	if cfg.Storage.Provider == "s3" {
		s3Config := &aws.Config{
			Credentials:      credentials.NewStaticCredentials(cfg.Storage.KeyID, cfg.Storage.AppKey, ""),
			Endpoint:         aws.String(cfg.Storage.Endpoint),
			Region:           aws.String(cfg.Storage.Region),
			S3ForcePathStyle: aws.Bool(true),
		}
		sess := session.Must(session.NewSession(s3Config))
		backend = NewS3Provider(s3.New(sess), cfg.Storage.Bucket)
	} else {
		backend = NewLocalProvider(cfg.Storage.VideoDir)
	}

	return &Client{backend: backend}
}

func NewWithProvider(backend Provider) *Client {
	return &Client{backend: backend}
}

func (c *Client) GetVideo(filename string) (*VideoObject, error) {
	return c.backend.Get(filename)
}

func (c *Client) HasVideo(filename string) (bool, error) {
	return c.backend.Exists(filename)
}

func (c *Client) ListVideos() ([]string, error) {
	return c.backend.List()
}
