package storage

import (
	"context"
	"testing"
)

func TestPublicURL(t *testing.T) {
	cases := []struct {
		base string
		key  string
		want string
	}{
		{base: "https://cdn.example.com", key: "snapshots/1/standings.json", want: "https://cdn.example.com/snapshots/1/standings.json"},
		{base: "https://cdn.example.com/", key: "/snapshots/1/standings.json", want: "https://cdn.example.com/snapshots/1/standings.json"},
		{base: "https://cdn.example.com/swiss", key: "a.json", want: "https://cdn.example.com/swiss/a.json"},
		{base: "", key: "a.json", want: ""},
		{base: "https://cdn.example.com", key: "", want: ""},
	}
	for _, c := range cases {
		if got := PublicURL(c.base, c.key); got != c.want {
			t.Errorf("PublicURL(%q, %q) = %q; want %q", c.base, c.key, got, c.want)
		}
	}
}

func TestNewCloudflareR2UploaderRequiresAllFields(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:  "acct",
		BucketName: "snapshots",
	})
	if err == nil {
		t.Fatal("NewCloudflareR2Uploader succeeded with missing credentials")
	}
}

func TestNewCloudflareR2Uploader(t *testing.T) {
	u, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:       "acct",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "snapshots",
		PublicBaseURL:   "https://cdn.example.com",
	})
	if err != nil {
		t.Fatalf("NewCloudflareR2Uploader: %v", err)
	}
	if got := u.GetPublicURL("x.json"); got != "https://cdn.example.com/x.json" {
		t.Errorf("GetPublicURL = %q", got)
	}
}
