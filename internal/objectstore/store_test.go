package objectstore

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	objects map[string][]byte
	etags   map[string]string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{objects: map[string][]byte{}, etags: map[string]string{}}
}

func (f *fakeAPI) GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(in.Key)

	body, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}

	etag := f.etags[key]

	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body)), ETag: aws.String(etag), ContentLength: aws.Int64(int64(len(body)))}, nil
}

func (f *fakeAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := aws.ToString(in.Key)

	buf, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.objects[key] = buf
	f.etags[key] = `"` + key + "-" + string(rune('0'+len(f.objects))) + `"`

	return &s3.PutObjectOutput{ETag: aws.String(f.etags[key])}, nil
}

func (f *fakeAPI) HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	key := aws.ToString(in.Key)

	body, ok := f.objects[key]
	if !ok {
		return nil, &types.NotFound{}
	}

	return &s3.HeadObjectOutput{ETag: aws.String(f.etags[key]), ContentLength: aws.Int64(int64(len(body)))}, nil
}

func (f *fakeAPI) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	delete(f.etags, aws.ToString(in.Key))

	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeAPI) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	var contents []types.Object

	for key := range f.objects {
		contents = append(contents, types.Object{Key: aws.String(key)})
	}

	return &s3.ListObjectsV2Output{Contents: contents}, nil
}

func TestPutThenGetRoundTrips(t *testing.T) {
	api := newFakeAPI()
	s := newStore(api, "bucket", nil)

	_, err := s.put(context.Background(), "k1", []byte(`{"a":1}`), "", "")
	require.NoError(t, err)

	body, meta, found, err := s.get(context.Background(), "k1", "")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"a":1}`, string(body))
	assert.NotEmpty(t, meta.ETag)
}

func TestPutWithIfNoneMatchStarRejectsExisting(t *testing.T) {
	api := newFakeAPI()
	s := newStore(api, "bucket", nil)

	_, err := s.put(context.Background(), "k1", []byte(`{}`), "", "*")
	require.NoError(t, err)

	_, err = s.put(context.Background(), "k1", []byte(`{}`), "", "*")
	assert.Error(t, err)
}

func TestPutWithStaleIfMatchFails(t *testing.T) {
	api := newFakeAPI()
	s := newStore(api, "bucket", nil)

	_, err := s.put(context.Background(), "k1", []byte(`{}`), "", "")
	require.NoError(t, err)

	_, err = s.put(context.Background(), "k1", []byte(`{}`), `"stale"`, "")
	assert.Error(t, err)
}

func TestDeleteAbsentFails(t *testing.T) {
	api := newFakeAPI()
	s := newStore(api, "bucket", nil)

	err := s.delete(context.Background(), "missing", "")
	assert.Error(t, err)
}

func TestGetWithMatchingIfNoneMatchSignalsNotModified(t *testing.T) {
	api := newFakeAPI()
	s := newStore(api, "bucket", nil)

	meta, err := s.put(context.Background(), "k1", []byte(`{}`), "", "")
	require.NoError(t, err)

	_, _, _, err = s.get(context.Background(), "k1", meta.ETag)
	assert.Error(t, err)
}

func TestCursorRoundTrips(t *testing.T) {
	encoded := encodeCursor("native-token")

	decoded, err := decodeCursor(encoded)
	require.NoError(t, err)
	assert.Equal(t, "native-token", decoded)
}

func TestObjectKeyRoundTrips(t *testing.T) {
	key := objectKey("json/users/", "u1")
	assert.Equal(t, "json/users/u1.json", key)

	id, err := idFromKey("json/users/", key)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
}
