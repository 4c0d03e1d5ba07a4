// Package analysis persists completed analyses as JSON documents.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/resufit/resufit/internal/db"
	"github.com/resufit/resufit/internal/domain"
)

const rootPath = "$"

// store is the consumer interface for analysis persistence.
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// Repo implements usecase/analysis.Repository on a JSON document store.
type Repo struct {
	store store
	ttl   time.Duration
}

// New creates an analysis repository. ttl <= 0 disables expiry.
func New(s store, ttl time.Duration) *Repo {
	return &Repo{store: s, ttl: ttl}
}

// Save stores an analysis, overwriting any existing document with the same ID.
func (r *Repo) Save(ctx context.Context, a domain.Analysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal analysis %s: %w", a.ID, err)
	}

	key := analysisKey(a.ID)
	if err := r.store.JSONSet(ctx, key, rootPath, data); err != nil {
		return fmt.Errorf("json set analysis %s: %w", a.ID, err)
	}

	if r.ttl > 0 {
		if err := r.store.Expire(ctx, key, r.ttl, false); err != nil {
			return fmt.Errorf("expire analysis %s: %w", a.ID, err)
		}
	}
	return nil
}

// Get retrieves an analysis by ID.
func (r *Repo) Get(ctx context.Context, id string) (domain.Analysis, error) {
	data, err := r.store.JSONGet(ctx, analysisKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.Analysis{}, domain.ErrAnalysisNotFound
		}
		return domain.Analysis{}, fmt.Errorf("json get analysis %s: %w", id, err)
	}
	return unmarshalAnalysis(data)
}

// List returns all stored analyses, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Analysis, error) {
	keys, err := r.store.Scan(ctx, analysisKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan analyses: %w", err)
	}

	analyses := make([]domain.Analysis, 0, len(keys))
	for _, key := range keys {
		data, err := r.store.JSONGet(ctx, key)
		if err != nil {
			// Keys can expire between SCAN and JSON.GET.
			if errors.Is(err, db.ErrKeyNotFound) {
				continue
			}
			return nil, fmt.Errorf("json get %s: %w", key, err)
		}
		a, err := unmarshalAnalysis(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", key, err)
		}
		analyses = append(analyses, a)
	}

	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})

	return analyses, nil
}

// Delete removes an analysis by ID.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := analysisKey(id)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", id, err)
	}
	if !exists {
		return domain.ErrAnalysisNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del analysis %s: %w", id, err)
	}
	return nil
}

// unmarshalAnalysis tolerates JSON.GET responses that wrap the document in a
// one-element array, as path-form queries do.
func unmarshalAnalysis(data []byte) (domain.Analysis, error) {
	var a domain.Analysis
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []domain.Analysis
		if err := json.Unmarshal(data, &list); err != nil {
			return domain.Analysis{}, fmt.Errorf("unmarshal analysis list: %w", err)
		}
		if len(list) == 0 {
			return domain.Analysis{}, domain.ErrAnalysisNotFound
		}
		return list[0], nil
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return domain.Analysis{}, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return a, nil
}

// Key pattern: resufit:analysis:{id}

func analysisKey(id string) string {
	return fmt.Sprintf("%sanalysis:%s", domain.KeyPrefix, id)
}
