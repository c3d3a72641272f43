// Package uriutil converts between file system paths and file:// URIs,
// covering POSIX paths, Windows drive letters, and percent-encoded
// segments.
package uriutil

import (
	"net/url"
	"path/filepath"
	"strings"
)

// PathToURI converts a file system path to a file:// URI. Relative paths
// are made absolute first, and each segment is percent-encoded.
//
//	/home/user/proj -> file:///home/user/proj
//	C:\proj         -> file:///C:/proj
//	/a b            -> file:///a%20b
func PathToURI(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	absPath = filepath.ToSlash(absPath)

	// Windows drive paths need a leading slash: C:/proj -> /C:/proj.
	if !strings.HasPrefix(absPath, "/") {
		absPath = "/" + absPath
	}

	segments := strings.Split(absPath, "/")
	for i, seg := range segments {
		if seg != "" {
			segments[i] = url.PathEscape(seg)
		}
	}
	return "file://" + strings.Join(segments, "/")
}

// URIToPath converts a file:// URI to a file system path, decoding
// percent-encoded segments and stripping the extra slash before Windows
// drive letters.
func URIToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return uriFallback(uri)
	}

	path := parsed.Path
	decoded, err := url.PathUnescape(path)
	if err != nil {
		decoded = path
	}

	// /C:/proj -> C:/proj
	if len(decoded) >= 3 && decoded[0] == '/' && decoded[2] == ':' {
		decoded = decoded[1:]
	}
	return filepath.FromSlash(decoded)
}

// uriFallback strips the file scheme from URIs that fail to parse.
func uriFallback(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path)
}
