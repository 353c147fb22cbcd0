// Package prefs stores plain-text user preferences in the local database.
// Keys are namespaced so they never collide with credential entries.
package prefs

import (
	"context"

	"github.com/dmitrijs2005/tripjournal/internal/common"
	"github.com/dmitrijs2005/tripjournal/internal/repositories/metadata"
)

type Store struct {
	repo metadata.Repository
}

func New(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.repo.Get(ctx, common.PrefKeyPrefix+key)
	if err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, nil
	}
	return string(v), true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, common.PrefKeyPrefix+key, []byte(value))
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, common.PrefKeyPrefix+key)
}
