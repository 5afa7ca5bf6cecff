package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestR2Store_Upload(t *testing.T) {
	fake := &fakePutter{}
	st := NewR2StoreWithClient(fake, "arena", "https://cdn.example.com/")

	url, err := st.Upload(context.Background(), "fighters/x.png", "image/png", []byte("png"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/fighters/x.png", url)
	assert.Equal(t, "arena", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "fighters/x.png", aws.ToString(fake.input.Key))
	assert.Equal(t, "image/png", aws.ToString(fake.input.ContentType))
	assert.Equal(t, []byte("png"), fake.body)
}

func TestR2Store_UploadError(t *testing.T) {
	st := NewR2StoreWithClient(&fakePutter{err: errors.New("boom")}, "arena", "https://cdn")

	_, err := st.Upload(context.Background(), "k", "image/png", nil)
	assert.ErrorContains(t, err, "boom")
}

func TestNewR2Store_RequiresCredentials(t *testing.T) {
	full := R2Config{AccountID: "acct", AccessKeyID: "key", AccessKeySecret: "secret", Bucket: "arena"}
	require.True(t, full.Enabled())

	cases := []struct {
		name   string
		mutate func(*R2Config)
	}{
		{"bucket only", func(c *R2Config) { *c = R2Config{Bucket: "arena"} }},
		{"missing account id", func(c *R2Config) { c.AccountID = "" }},
		{"missing access key", func(c *R2Config) { c.AccessKeyID = "" }},
		{"missing secret", func(c *R2Config) { c.AccessKeySecret = "" }},
		{"missing bucket", func(c *R2Config) { c.Bucket = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := full
			tc.mutate(&cfg)

			assert.False(t, cfg.Enabled())
			_, err := NewR2Store(context.Background(), cfg)
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestFighterImageKey(t *testing.T) {
	key := FighterImageKey("Red Dragon!", "Photo.JPG")
	assert.True(t, strings.HasPrefix(key, "fighters/red-dragon-"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)

	assert.True(t, strings.HasPrefix(FighterImageKey("", "x"), "fighters/fighter-"))
	assert.True(t, strings.HasSuffix(FighterImageKey("a", "noext"), ".png"))
}
