// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package share

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		require.NoError(t, json.Unmarshal(b, &got))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"abc123"}`)
	}))
	defer srv.Close()

	id, err := Upload(srv.URL, "mybook", "[api]\nname = \"mybook\"\n")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
	assert.Equal(t, "mybook", got.Name)
	assert.Contains(t, got.Value, "[api]")
}

func TestUploadRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := Upload(srv.URL, "mybook", "contents")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
