// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cosmic-community/coffee-closer-network/internal/config"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/utils"
	"github.com/go-resty/resty/v2"
)

// objectProps limits read responses to the fields [Object] decodes.
const objectProps = "id,slug,title,type,status,metadata,created_at,modified_at"

type cosmicStore struct {
	client *utils.HTTPClient

	bucket   string
	readKey  string
	writeKey string

	logger *logger.Logger
}

// NewCosmicStore constructs the Cosmic v3 REST implementation of
// [ContentStore]. It normalises and validates cfg.BaseURL and configures the
// underlying HTTP client with the resolved base URL and cfg.RequestTimeout,
// which bounds every call regardless of the caller's context.
//
// Returns an error if the base URL is invalid or a credential is missing.
func NewCosmicStore(cfg config.Cosmic, logger *logger.Logger) (ContentStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid content store base url: %w", err)
	}
	if cfg.BucketSlug == "" || cfg.ReadKey == "" || cfg.WriteKey == "" {
		return nil, config.ErrInvalidStorageConfigs
	}

	return &cosmicStore{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		bucket:   url.PathEscape(cfg.BucketSlug),
		readKey:  cfg.ReadKey,
		writeKey: cfg.WriteKey,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FindObject implements [ContentStore]. It GETs
// /buckets/{bucket}/objects with the JSON-encoded query and limit=1.
// The store answers 404 for an empty result; an empty objects list is
// treated the same way.
func (c *cosmicStore) FindObject(ctx context.Context, query Query) (obj Object, err error) {
	defer func(started time.Time) { observe("find", started, err) }(time.Now())

	q, err := json.Marshal(query)
	if err != nil {
		return Object{}, fmt.Errorf("encode object query: %w", err)
	}

	var result objectsResponse
	resp, err := c.readRequest(ctx).
		SetQueryParams(map[string]string{
			"query": string(q),
			"limit": "1",
			"props": objectProps,
		}).
		SetResult(&result).
		Get(c.objectsPath())
	if err != nil {
		return Object{}, fmt.Errorf("%w: find object request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Object{}, err
	}

	if len(result.Objects) == 0 {
		return Object{}, fmt.Errorf("%w: empty result", ErrNotFound)
	}

	c.logger.Debug().Str("object_id", result.Objects[0].ID).Msg("content store: object found")
	return result.Objects[0], nil
}

// GetObject implements [ContentStore]. It GETs /buckets/{bucket}/objects/{id}.
func (c *cosmicStore) GetObject(ctx context.Context, id string) (obj Object, err error) {
	defer func(started time.Time) { observe("get", started, err) }(time.Now())

	if strings.TrimSpace(id) == "" {
		return Object{}, fmt.Errorf("%w: empty object id", ErrNotFound)
	}

	var result objectResponse
	resp, err := c.readRequest(ctx).
		SetQueryParam("props", objectProps).
		SetResult(&result).
		Get(c.objectPath(id))
	if err != nil {
		return Object{}, fmt.Errorf("%w: get object request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Object{}, err
	}

	return result.Object, nil
}

// InsertObject implements [ContentStore]. It POSTs input to
// /buckets/{bucket}/objects with the write key.
func (c *cosmicStore) InsertObject(ctx context.Context, input ObjectInput) (obj Object, err error) {
	defer func(started time.Time) { observe("insert", started, err) }(time.Now())

	var result objectResponse
	resp, err := c.writeRequest(ctx).
		SetBody(input).
		SetResult(&result).
		Post(c.objectsPath())
	if err != nil {
		return Object{}, fmt.Errorf("%w: insert object request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Object{}, err
	}

	c.logger.Debug().Str("object_id", result.Object.ID).Str("type", input.Type).Msg("content store: object inserted")
	return result.Object, nil
}

// UpdateObject implements [ContentStore]. It PATCHes input to
// /buckets/{bucket}/objects/{id} with the write key.
func (c *cosmicStore) UpdateObject(ctx context.Context, id string, input ObjectInput) (obj Object, err error) {
	defer func(started time.Time) { observe("update", started, err) }(time.Now())

	if strings.TrimSpace(id) == "" {
		return Object{}, fmt.Errorf("%w: empty object id", ErrNotFound)
	}

	var result objectResponse
	resp, err := c.writeRequest(ctx).
		SetBody(input).
		SetResult(&result).
		Patch(c.objectPath(id))
	if err != nil {
		return Object{}, fmt.Errorf("%w: update object request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Object{}, err
	}

	c.logger.Debug().Str("object_id", id).Msg("content store: object updated")
	return result.Object, nil
}

func (c *cosmicStore) objectsPath() string {
	return "/buckets/" + c.bucket + "/objects"
}

func (c *cosmicStore) objectPath(id string) string {
	return c.objectsPath() + "/" + url.PathEscape(id)
}

func (c *cosmicStore) readRequest(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetQueryParam("read_key", c.readKey)
}

func (c *cosmicStore) writeRequest(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.writeKey)
}
