package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/config"
)

type fakeObjects struct {
	put     *s3.PutObjectInput
	body    string
	deleted string
	err     error
}

func (f *fakeObjects) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = params
	raw, _ := io.ReadAll(params.Body)
	f.body = string(raw)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = aws.ToString(params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresigner struct {
	key     string
	expires time.Duration
}

func (f *fakePresigner) PresignGetObject(_ context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	opts := &s3.PresignOptions{}
	for _, fn := range optFns {
		fn(opts)
	}
	f.key = aws.ToString(params.Key)
	f.expires = opts.Expires
	return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + f.key}, nil
}

func testConfig() config.S3Config {
	return config.S3Config{Bucket: "club-assets", Region: "eu-west-1"}
}

func TestUploadFile(t *testing.T) {
	objects := &fakeObjects{}
	uploader := newS3Uploader(objects, &fakePresigner{}, testConfig(), nil)

	result, err := uploader.UploadFile(context.Background(), File{
		Filename:    "my logo.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(result.Key, "-my-logo.png"))
	assert.Equal(t, "https://club-assets.s3.eu-west-1.amazonaws.com/"+result.Key, result.Location)
	require.NotNil(t, objects.put)
	assert.Equal(t, "club-assets", aws.ToString(objects.put.Bucket))
	assert.Equal(t, types.ObjectCannedACLPublicRead, objects.put.ACL)
	assert.Equal(t, "image/png", aws.ToString(objects.put.ContentType))
	assert.Equal(t, "png-bytes", objects.body)
}

func TestUploadFileCustomEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.Endpoint = "http://localhost:9000/"
	uploader := newS3Uploader(&fakeObjects{}, &fakePresigner{}, cfg, nil)

	assert.Equal(t, "http://localhost:9000/club-assets/abc-logo.png", uploader.Location("abc-logo.png"))
}

func TestUploadFileFailure(t *testing.T) {
	uploader := newS3Uploader(&fakeObjects{err: errors.New("AccessDenied")}, &fakePresigner{}, testConfig(), nil)

	_, err := uploader.UploadFile(context.Background(), File{Filename: "a.png", Body: strings.NewReader("x")})
	require.Error(t, err)
	var upload *apperr.UploadError
	assert.ErrorAs(t, err, &upload)
	assert.Contains(t, err.Error(), "AccessDenied")

	_, err = uploader.UploadFile(context.Background(), File{Filename: "empty.png"})
	assert.ErrorAs(t, err, &upload)
}

func TestDeleteFile(t *testing.T) {
	objects := &fakeObjects{}
	uploader := newS3Uploader(objects, &fakePresigner{}, testConfig(), nil)

	require.NoError(t, uploader.DeleteFile(context.Background(), "abc-logo.png"))
	assert.Equal(t, "abc-logo.png", objects.deleted)
}

func TestSignedURL(t *testing.T) {
	presigner := &fakePresigner{}
	uploader := newS3Uploader(&fakeObjects{}, presigner, testConfig(), nil)

	url, err := uploader.SignedURL(context.Background(), "abc-logo.png", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/abc-logo.png", url)
	assert.Equal(t, DefaultSignedURLTTL, presigner.expires)

	_, err = uploader.SignedURL(context.Background(), "abc-logo.png", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, presigner.expires)
}

func TestObjectKey(t *testing.T) {
	tests := map[string]string{
		"logo.png":              "-logo.png",
		"../../etc/passwd":      "-passwd",
		`C:\photos\court 1.jpg`: "-court-1.jpg",
		"":                      "-file",
	}
	for in, suffix := range tests {
		key := ObjectKey(in)
		assert.True(t, strings.HasSuffix(key, suffix), "key %q for %q", key, in)
		assert.Len(t, key, 36+len(suffix))
	}
}

func TestFileUploadInputDecode(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))

	file, err := FileUploadInput{Filename: "a.txt", ContentType: "text/plain", Base64: encoded}.Decode()
	require.NoError(t, err)
	raw, _ := io.ReadAll(file.Body)
	assert.Equal(t, "hello", string(raw))
	assert.Equal(t, "text/plain", file.ContentType)

	file, err = FileUploadInput{Filename: "b.png", Base64: "data:image/png;base64," + encoded}.Decode()
	require.NoError(t, err)
	assert.Equal(t, "image/png", file.ContentType)

	_, err = FileUploadInput{Filename: "c.png", Base64: "!!not-base64"}.Decode()
	var validation *apperr.ValidationError
	assert.ErrorAs(t, err, &validation)

	_, err = FileUploadInput{Filename: "d.png", Base64: ""}.Decode()
	assert.ErrorAs(t, err, &validation)
}

func TestDisabledUploader(t *testing.T) {
	_, err := Disabled{}.UploadFile(context.Background(), File{})
	var upload *apperr.UploadError
	assert.ErrorAs(t, err, &upload)
}
