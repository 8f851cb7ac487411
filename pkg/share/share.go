// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

// Package share uploads a spell-book to a remote endpoint so it can be handed to someone else.
package share

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/pulumi/qwest/pkg/version"
)

type payload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type created struct {
	ID string `json:"id"`
}

// Upload POSTs the raw spell-book contents to url and returns the identifier minted by the remote server.  Any
// status other than 201 Created is an error.
func Upload(url, bookName, contents string) (string, error) {
	body, err := json.Marshal(payload{Name: bookName, Value: contents})
	if err != nil {
		return "", errors.Wrap(err, "serializing share payload")
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrapf(err, "building share request for %v", url)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "qwest/"+version.Version)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "sharing spell-book to %v", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", errors.Errorf("unexpected status %v from %v", resp.Status, url)
	}

	var c created
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		return "", errors.Wrap(err, "parsing share response")
	}
	return c.ID, nil
}
