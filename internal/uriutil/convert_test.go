package uriutil

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathToURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path expectations")
	}

	assert.Equal(t, "file:///home/user/proj", PathToURI("/home/user/proj"))
	assert.Equal(t, "file:///a%20b/c.volki", PathToURI("/a b/c.volki"))
}

func TestURIToPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path expectations")
	}

	assert.Equal(t, "/home/user/proj", URIToPath("file:///home/user/proj"))
	assert.Equal(t, "/a b/c.volki", URIToPath("file:///a%20b/c.volki"))

	t.Run("windows drive letter loses extra slash", func(t *testing.T) {
		assert.Equal(t, "C:/proj", URIToPath("file:///C:/proj"))
	})

	t.Run("non file scheme falls back", func(t *testing.T) {
		assert.Equal(t, "untitled:Untitled-1", URIToPath("untitled:Untitled-1"))
	})
}

func TestRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path expectations")
	}

	for _, path := range []string{"/home/user/proj", "/tmp/a b", "/src/lib.volki"} {
		assert.Equal(t, path, URIToPath(PathToURI(path)), path)
	}
}
