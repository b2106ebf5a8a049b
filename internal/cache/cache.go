/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cache provides per-instance memoization of named derived
// quantities. Distributions use it to compute expensive values (matrix
// roots, normalizing constants, alias tables) once, on first access.
package cache

import "sync"

// Cache maps quantity names to memoized values. The zero value is ready
// to use. Values are written at most once per name and never
// invalidated; owners are expected to be immutable apart from the cache
// itself.
type Cache struct {
	lock  sync.Mutex
	slots map[string]interface{}
}

// Get returns the cached value for name, computing and storing it via
// compute on first access. The lock is held across compute, so
// concurrent first accesses to the same slot compute exactly once and
// never observe a partially written value. compute must be pure with
// respect to the owner's canonical parameters and must not access the
// same Cache, or Get deadlocks; an error is returned without
// populating the slot, so a later access retries.
func Get[T any](c *Cache, name string, compute func() (T, error)) (T, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if v, ok := c.slots[name]; ok {
		return v.(T), nil
	}

	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	if c.slots == nil {
		c.slots = make(map[string]interface{})
	}
	c.slots[name] = v

	return v, nil
}
