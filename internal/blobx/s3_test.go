package blobx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 keeps one object in memory.
type fakeS3 struct {
	data   []byte
	getErr error
	putErr error
}

func (f *fakeS3) GetObject(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.data == nil {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.data = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_MissingKeyIsSlotNotFound(t *testing.T) {
	s := &S3Store{client: &fakeS3{}, bucket: "b", key: "users.json"}

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrorSlotNotFound)
}

func TestS3Store_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	s := &S3Store{client: &fakeS3{}, bucket: "b", key: "users.json"}

	require.NoError(t, s.Save(ctx, []byte(`[{"id":"1"}]`)))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), data)
}

func TestS3Store_ErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	s := &S3Store{client: &fakeS3{getErr: boom, putErr: boom}, bucket: "b", key: "k"}

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, boom)

	err = s.Save(context.Background(), []byte(`[]`))
	assert.ErrorIs(t, err, boom)
}
