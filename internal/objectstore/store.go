package objectstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/mlog"
)

var errInvalidKey = errors.New("objectstore: key does not match expected layout")

func notFoundErr(kind, id string) error {
	return apperr.NotFoundError{EntityType: kind, ID: id}
}

const defaultListLimit = 100

// store holds the S3 client and bucket shared by every per-kind
// repository; each repository composes it with its own sub-prefix and
// aggregate (de)serialization.
type store struct {
	client API
	bucket string
	logger mlog.Logger
}

func newStore(client API, bucket string, logger mlog.Logger) store {
	if logger == nil {
		logger = &mlog.NoneLogger{}
	}

	return store{client: client, bucket: bucket, logger: logger}
}

// probe head-checks key, returning found=false on a clean absence and
// mapping anything else to an internal error.
func (s store) probe(ctx context.Context, key string) (meta domain.Metadata, found bool, err error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)})
	if err != nil {
		if isNotFound(err) {
			return domain.Metadata{}, false, nil
		}

		s.logger.Errorf("head %s failed: %v", key, err)

		return domain.Metadata{}, false, apperr.InternalError{Err: err}
	}

	return metadataFrom(out.ETag, out.ContentLength, out.LastModified), true, nil
}

// get fetches key's body, honoring ifNoneMatch by comparing against a
// preceding head probe rather than issuing a conditional GET.
func (s store) get(ctx context.Context, key string, ifNoneMatch string) (body []byte, meta domain.Metadata, found bool, err error) {
	meta, found, err = s.probe(ctx, key)
	if err != nil || !found {
		return nil, domain.Metadata{}, found, err
	}

	if ifNoneMatch != "" && ifNoneMatch == meta.ETag {
		return nil, meta, true, apperr.NotModifiedError{ETag: meta.ETag}
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)})
	if err != nil {
		if isNotFound(err) {
			return nil, domain.Metadata{}, false, nil
		}

		s.logger.Errorf("get %s failed: %v", key, err)

		return nil, domain.Metadata{}, false, apperr.InternalError{Err: err}
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		s.logger.Errorf("get %s failed reading body: %v", key, err)

		return nil, domain.Metadata{}, false, apperr.InternalError{Err: err}
	}

	return data, metadataFrom(out.ETag, out.ContentLength, out.LastModified), true, nil
}

// put performs the metadata probe mandated by precondition handling,
// then writes body, mapping precondition and absence signals to the
// error taxonomy.
func (s store) put(ctx context.Context, key string, body []byte, ifMatch, ifNoneMatch string) (domain.Metadata, error) {
	if ifMatch != "" || ifNoneMatch != "" {
		meta, found, err := s.probe(ctx, key)
		if err != nil {
			return domain.Metadata{}, err
		}

		switch {
		case ifNoneMatch == "*" && found:
			return domain.Metadata{}, apperr.ConflictError{EntityType: key, Code: "already_exists", Message: "an object with this id already exists"}
		case ifMatch != "" && !found:
			return domain.Metadata{}, apperr.NotFoundError{EntityType: key, ID: key}
		case ifMatch != "" && found && meta.ETag != ifMatch:
			return domain.Metadata{}, apperr.PreconditionFailedError{EntityType: key, Code: "etag_mismatch", Message: "if-match precondition failed"}
		}
	}

	out, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.logger.Errorf("put %s failed: %v", key, err)

		return domain.Metadata{}, apperr.InternalError{Err: err}
	}

	return metadataFrom(out.ETag, aws.Int64(int64(len(body))), nil), nil
}

// delete probes for existence and the If-Match precondition before
// issuing the deletion, since S3's DeleteObject is otherwise silently
// idempotent on an absent key.
func (s store) delete(ctx context.Context, key, ifMatch string) error {
	meta, found, err := s.probe(ctx, key)
	if err != nil {
		return err
	}

	if !found {
		return apperr.NotFoundError{EntityType: key, ID: key}
	}

	if ifMatch != "" && meta.ETag != ifMatch {
		return apperr.PreconditionFailedError{EntityType: key, Code: "etag_mismatch", Message: "if-match precondition failed"}
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)}); err != nil {
		s.logger.Errorf("delete %s failed: %v", key, err)

		return apperr.InternalError{Err: err}
	}

	return nil
}

// list walks subPrefix using the store's native continuation token,
// surfacing it to the caller as an opaque base64url cursor.
func (s store) list(ctx context.Context, subPrefix string, limit int, cursor string) (keys []string, nextCursor string, err error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var token *string

	if cursor != "" {
		raw, decErr := decodeCursor(cursor)
		if decErr != nil {
			return nil, "", apperr.ValidationError{Code: "invalid_cursor", Message: "cursor is not a valid page token", Field: "cursor"}
		}

		token = aws.String(raw)
	}

	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:            aws.String(s.bucket),
		Prefix:            aws.String(subPrefix),
		MaxKeys:           aws.Int32(int32(limit)),
		ContinuationToken: token,
	})
	if err != nil {
		s.logger.Errorf("list %s failed: %v", subPrefix, err)

		return nil, "", apperr.InternalError{Err: err}
	}

	keys = make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		keys = append(keys, aws.ToString(obj.Key))
	}

	if aws.ToBool(out.IsTruncated) && out.NextContinuationToken != nil {
		nextCursor = encodeCursor(aws.ToString(out.NextContinuationToken))
	}

	return keys, nextCursor, nil
}

func encodeCursor(token string) string {
	return base64.URLEncoding.EncodeToString([]byte(token))
}

func decodeCursor(cursor string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func metadataFrom(etag *string, size *int64, lastModified any) domain.Metadata {
	m := domain.Metadata{ETag: aws.ToString(etag), Size: aws.ToInt64(size)}

	switch v := lastModified.(type) {
	case *string:
		m.LastModified = aws.ToString(v)
	case nil:
	default:
		m.LastModified = formatLastModified(v)
	}

	return m
}

// formatLastModified stringifies the SDK's *time.Time LastModified
// field; kept generic over `any` so callers passing s3 output structs
// directly (GetObjectOutput/HeadObjectOutput both use *time.Time) need
// no per-type plumbing.
func formatLastModified(v any) string {
	if t, ok := v.(*time.Time); ok {
		if t == nil {
			return ""
		}

		return t.String()
	}

	type stringer interface{ String() string }

	if t, ok := v.(stringer); ok {
		return t.String()
	}

	return ""
}

func isNotFound(err error) bool {
	var nf *types.NoSuchKey
	if errors.As(err, &nf) {
		return true
	}

	var notFound *types.NotFound
	return errors.As(err, &notFound)
}
