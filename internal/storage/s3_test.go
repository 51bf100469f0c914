package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *mockS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func TestS3Store_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("Bucket URL", func(t *testing.T) {
		client := new(mockS3)
		store := newS3Store(client, "eu-central-1", "cars", "")
		client.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return aws.ToString(in.Bucket) == "cars" &&
				strings.HasPrefix(aws.ToString(in.Key), "images/cars/") &&
				strings.HasSuffix(aws.ToString(in.Key), ".png") &&
				aws.ToString(in.ContentType) == "image/png" &&
				aws.ToInt64(in.ContentLength) == 3
		})).Return(&s3.PutObjectOutput{}, nil)

		url, err := store.Store(ctx, []byte{1, 2, 3}, "png")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "https://cars.s3.eu-central-1.amazonaws.com/images/cars/"))
		client.AssertExpectations(t)
	})

	t.Run("CDN URL", func(t *testing.T) {
		client := new(mockS3)
		store := newS3Store(client, "eu-central-1", "cars", "cdn.example.com")
		client.On("PutObject", ctx, mock.Anything).Return(&s3.PutObjectOutput{}, nil)

		url, err := store.Store(ctx, []byte("img"), ".jpg")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/images/cars/"))
	})

	t.Run("Upload failure", func(t *testing.T) {
		client := new(mockS3)
		store := newS3Store(client, "eu-central-1", "cars", "")
		client.On("PutObject", ctx, mock.Anything).Return(nil, errors.New("access denied"))

		url, err := store.Store(ctx, []byte("img"), ".jpg")
		assert.Error(t, err)
		assert.Empty(t, url)
	})
}

func TestS3Store_Open(t *testing.T) {
	ctx := context.Background()
	client := new(mockS3)
	store := newS3Store(client, "eu-central-1", "cars", "")

	client.On("GetObject", ctx, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Key) == "images/cars/a.jpg"
	})).Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte("jpeg")))}, nil)

	rc, err := store.Open(ctx, "a.jpg")
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "jpeg", string(data))

	_, err = store.Open(ctx, "x/../../a.jpg")
	assert.ErrorIs(t, err, ErrInvalidName)
}
