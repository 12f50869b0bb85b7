// Package objectstore implements the three per-kind repository
// contracts in internal/repository against an S3-compatible object
// store. A configured prefix roots all data; kinds live at
// sub-prefixes, and an object key is <sub-prefix><urlencoded-id>.json.
package objectstore

import (
	"context"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the narrow subset of the S3 client this package exercises,
// declared so repository implementations can be tested against a
// fake without a live bucket.
type API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// objectKey builds <subPrefix><urlencoded-id>.json. The identifier
// regex already guarantees url-safety; encoding is still applied
// defensively.
func objectKey(subPrefix, id string) string {
	return subPrefix + url.QueryEscape(id) + ".json"
}

// idFromKey reverses objectKey for a key known to live under subPrefix.
func idFromKey(subPrefix, key string) (string, error) {
	name := key[len(subPrefix):]
	const suffix = ".json"

	if len(name) < len(suffix) {
		return "", errInvalidKey
	}

	name = name[:len(name)-len(suffix)]

	return url.QueryUnescape(name)
}
