package storage

import (
	"context"
	"strings"
	"testing"

	"homefix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicID(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":            "photo",
		"dir/sub/license.pdf":  "license",
		`C:\Users\me\scan.png`: "scan",
		"noext":                "noext",
	}
	for in, want := range cases {
		assert.Equal(t, want, publicID(in), in)
	}
}

func TestDisabledRejectsUploads(t *testing.T) {
	_, err := Disabled{}.Upload(context.Background(), FolderServiceImages, "a.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestNewCloudinaryStorageRequiresCredentials(t *testing.T) {
	_, err := NewCloudinaryStorage("", "key", "secret")
	assert.Error(t, err)
}
