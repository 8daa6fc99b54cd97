package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

type mockAPIError struct {
	code string
}

func (e *mockAPIError) ErrorCode() string             { return e.code }
func (e *mockAPIError) ErrorMessage() string          { return e.code }
func (e *mockAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultUnknown }
func (e *mockAPIError) Error() string                 { return fmt.Sprintf("api error %s", e.code) }

// fakeS3 keeps objects in a map keyed by bucket/key.
type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	k := *in.Bucket + "/" + *in.Key
	f.objects[k] = data
	f.types[k] = *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func TestNewS3(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()
		store, err := NewS3(Config{Bucket: "b", AccessKey: "a", SecretKey: "s"})
		require.NoError(t, err)
		require.NotNil(t, store.client)
		require.Equal(t, DefaultRegion, store.cfg.Region)
	})

	t.Run("custom endpoint", func(t *testing.T) {
		t.Parallel()
		store, err := NewS3(Config{
			Bucket:    "b",
			AccessKey: "a",
			SecretKey: "s",
			Endpoint:  "http://localhost:9000",
			PathStyle: true,
		})
		require.NoError(t, err)
		require.NotNil(t, store)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()
		store, err := NewS3(Config{Bucket: "b"})
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Nil(t, store)
	})
}

func TestS3Storage_ReadWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fake := newFakeS3()
	store := &S3Storage{client: fake, cfg: Config{Bucket: "locales", Prefix: "app/i18n"}}

	_, err := store.Read(ctx, "en/common.json")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Write(ctx, "en/common.json", []byte(`{"a":"A"}`)))
	require.Equal(t, []byte(`{"a":"A"}`), fake.objects["locales/app/i18n/en/common.json"])
	require.Equal(t, "application/json", fake.types["locales/app/i18n/en/common.json"])

	data, err := store.Read(ctx, "/en/./common.json")
	require.NoError(t, err)
	require.Equal(t, `{"a":"A"}`, string(data))

	require.NoError(t, store.Write(ctx, "i18n.ts", []byte("export {}")))
	require.Equal(t, "text/typescript", fake.types["locales/app/i18n/i18n.ts"])

	_, err = store.Read(ctx, "../secret.json")
	require.ErrorIs(t, err, ErrInvalidName)

	fake.putErr = &mockAPIError{code: "AccessDenied"}
	err = store.Write(ctx, "en/common.json", nil)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestWrapS3Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		fallback error
		want     error
	}{
		{"NoSuchKey code", &mockAPIError{code: "NoSuchKey"}, ErrWriteFailed, ErrNotFound},
		{"NotFound code", &mockAPIError{code: "NotFound"}, ErrWriteFailed, ErrNotFound},
		{"AccessDenied code", &mockAPIError{code: "AccessDenied"}, ErrWriteFailed, ErrAccessDenied},
		{"Forbidden code", &mockAPIError{code: "Forbidden"}, ErrReadFailed, ErrAccessDenied},
		{"NoSuchKey typed error", &types.NoSuchKey{}, ErrReadFailed, ErrNotFound},
		{"unknown code", &mockAPIError{code: "SlowDown"}, ErrWriteFailed, ErrWriteFailed},
		{"plain error", errors.New("boom"), ErrReadFailed, ErrReadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, wrapS3Error(tt.err, tt.fallback), tt.want)
		})
	}
}
