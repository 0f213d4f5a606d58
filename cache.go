// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered views only go stale through mutations, which flush the cache.
	viewCacheExpiration = 30 * time.Minute
	viewCacheCleanup    = 5 * time.Minute
)

// NewViewCache creates the cache holding rendered shell output keyed by the
// command that produced it.
func NewViewCache() *cache.Cache {
	return cache.New(viewCacheExpiration, viewCacheCleanup)
}

func CacheView(c *cache.Cache, key string, view string) {
	c.Set(key, view, viewCacheExpiration)
}

func GetView(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// cachedView returns the view stored under key, rendering and storing it on
// a miss.
func cachedView(c *cache.Cache, key string, render func() string) string {
	if view, ok := GetView(c, key); ok {
		return view
	}
	view := render()
	CacheView(c, key, view)
	return view
}
