package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/config"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/services"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/utils"
)

const maxUploadBytes = 10 << 20 // 10 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func getS3Client() (*s3.Client, error) {
	cfg := appconfig.AppConfig
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID),
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg), nil
}

// storeArtworkImage persists an uploaded image and its thumbnail,
// returning public URLs and a best-effort cleanup to call if the
// subsequent database write fails. Object storage is used when R2 is
// configured, local disk under UploadDir otherwise.
func storeArtworkImage(header *multipart.FileHeader) (imageURL, thumbURL string, cleanup func(), err error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return "", "", nil, fmt.Errorf("unsupported image type %q", ext)
	}
	if header.Size > maxUploadBytes {
		return "", "", nil, fmt.Errorf("image exceeds %d MB limit", maxUploadBytes>>20)
	}

	file, err := header.Open()
	if err != nil {
		return "", "", nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return "", "", nil, err
	}
	if len(data) > maxUploadBytes {
		return "", "", nil, fmt.Errorf("image exceeds %d MB limit", maxUploadBytes>>20)
	}

	name := utils.GenerateID()

	// Thumbnails are best-effort; formats the decoder cannot handle
	// (e.g. webp) fall back to the full image.
	thumb, thumbErr := services.GenerateThumbnail(bytes.NewReader(data))

	if appconfig.AppConfig.R2AccountID != "" {
		return storeToR2(name, ext, header.Header.Get("Content-Type"), data, thumb, thumbErr == nil)
	}
	return storeToDisk(name, ext, data, thumb, thumbErr == nil)
}

func storeToDisk(name, ext string, data, thumb []byte, hasThumb bool) (string, string, func(), error) {
	dir := appconfig.AppConfig.UploadDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", nil, err
	}

	imagePath := filepath.Join(dir, name+ext)
	if err := os.WriteFile(imagePath, data, 0o644); err != nil {
		return "", "", nil, err
	}

	imageURL := "/uploads/" + name + ext
	thumbURL := imageURL
	thumbPath := ""
	if hasThumb {
		thumbPath = filepath.Join(dir, name+"_thumb.jpg")
		if err := os.WriteFile(thumbPath, thumb, 0o644); err != nil {
			os.Remove(imagePath)
			return "", "", nil, err
		}
		thumbURL = "/uploads/" + name + "_thumb.jpg"
	}

	cleanup := func() {
		if err := os.Remove(imagePath); err != nil {
			logger.Warn().Err(err).Str("path", imagePath).Msg("Upload cleanup failed")
		}
		if thumbPath != "" {
			os.Remove(thumbPath)
		}
	}
	return imageURL, thumbURL, cleanup, nil
}

func storeToR2(name, ext, contentType string, data, thumb []byte, hasThumb bool) (string, string, func(), error) {
	client, err := getS3Client()
	if err != nil {
		return "", "", nil, err
	}

	cfg := appconfig.AppConfig
	bucket := cfg.R2BucketName
	publicURL := cfg.R2PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.r2.dev", bucket)
	}

	imageKey := "artworks/" + name + ext
	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(imageKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", nil, err
	}

	imageURL := publicURL + "/" + imageKey
	thumbURL := imageURL
	thumbKey := ""
	if hasThumb {
		thumbKey = "artworks/" + name + "_thumb.jpg"
		_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(thumbKey),
			Body:        bytes.NewReader(thumb),
			ContentType: aws.String("image/jpeg"),
		})
		if err != nil {
			deleteR2Object(client, bucket, imageKey)
			return "", "", nil, err
		}
		thumbURL = publicURL + "/" + thumbKey
	}

	cleanup := func() {
		deleteR2Object(client, bucket, imageKey)
		if thumbKey != "" {
			deleteR2Object(client, bucket, thumbKey)
		}
	}
	return imageURL, thumbURL, cleanup, nil
}

func deleteR2Object(client *s3.Client, bucket, key string) {
	_, err := client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("R2 cleanup failed")
	}
}
