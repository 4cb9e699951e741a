// Package vault is the server-side replacement for the browser-local
// key/value store the product started with. Values are wrapped in a
// versioned envelope, lightly obfuscated and kept under a common key
// prefix in a pluggable backend. The cipher is not a security
// boundary; access control happens at the API layer.
package vault

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Well-known keys used by the application.
const (
	KeyProfile      = "profile"
	KeyAnalyzedJobs = "analyzedJobs"
	KeyCurrentJob   = "currentJobForResume"
)

// ErrNotFound is returned by backends when a key does not exist.
var ErrNotFound = errors.New("vault: key not found")

// Backend is the raw string store underneath the vault.
type Backend interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Vault reads and writes enveloped values. Every operation degrades
// silently: failures are logged and reported as a miss or a false
// return, never as an error the caller has to handle.
type Vault struct {
	backend Backend
	secret  string
	prefix  string
	log     *zap.Logger
	now     func() time.Time
}

func New(backend Backend, secret, prefix string, log *zap.Logger) *Vault {
	if log == nil {
		log = zap.NewNop()
	}
	return &Vault{
		backend: backend,
		secret:  secret,
		prefix:  prefix,
		log:     log,
		now:     time.Now,
	}
}

// Scoped returns a vault whose keys live under an extra namespace,
// typically a user ID. Clear on the returned vault only touches that
// namespace.
func (v *Vault) Scoped(scope string) *Vault {
	c := *v
	c.prefix = v.prefix + scope + ":"
	return &c
}

func (v *Vault) storageKey(key string) string {
	return v.prefix + key
}

// Set stores value under key. A ttl of zero means the value never
// expires. Returns false when the value could not be stored.
func (v *Vault) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	data, err := json.Marshal(value)
	if err != nil {
		v.log.Warn("vault: marshal failed", zap.String("key", key), zap.Error(err))
		return false
	}

	env := envelope{Version: Version, Data: data}
	if ttl > 0 {
		env.Timestamp = v.now().Add(ttl).UnixMilli()
	}

	stored, err := v.encode(env)
	if err != nil {
		v.log.Warn("vault: encode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := v.backend.Set(ctx, v.storageKey(key), stored, ttl); err != nil {
		v.log.Warn("vault: set failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Get reads the value stored under key into out. It returns false on
// a missing key, an expired or corrupted payload, or a version
// mismatch; corrupted and outdated payloads are removed so the next
// read is a clean miss. Plain JSON written before the envelope format
// is still readable and is re-stored in the current format.
func (v *Vault) Get(ctx context.Context, key string, out any) bool {
	stored, err := v.backend.Get(ctx, v.storageKey(key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			v.log.Warn("vault: get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	env, err := v.decode(stored)
	if err != nil {
		// Legacy value from before the envelope format.
		if json.Unmarshal([]byte(stored), out) == nil {
			v.log.Info("vault: migrated legacy value", zap.String("key", key))
			v.Set(ctx, key, out, 0)
			return true
		}
		v.log.Warn("vault: unreadable value dropped", zap.String("key", key), zap.Error(err))
		v.Remove(ctx, key)
		return false
	}

	if env.Version != Version {
		v.log.Info("vault: version mismatch dropped",
			zap.String("key", key), zap.String("version", env.Version))
		v.Remove(ctx, key)
		return false
	}
	if env.expired(v.now()) {
		v.Remove(ctx, key)
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		v.log.Warn("vault: payload unmarshal failed", zap.String("key", key), zap.Error(err))
		v.Remove(ctx, key)
		return false
	}
	return true
}

// Remove deletes key. Missing keys are not an error.
func (v *Vault) Remove(ctx context.Context, key string) {
	if err := v.backend.Delete(ctx, v.storageKey(key)); err != nil && !errors.Is(err, ErrNotFound) {
		v.log.Warn("vault: delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Clear removes every key under the vault prefix.
func (v *Vault) Clear(ctx context.Context) {
	keys, err := v.backend.Keys(ctx, v.prefix)
	if err != nil {
		v.log.Warn("vault: listing keys failed", zap.Error(err))
		return
	}
	for _, k := range keys {
		if err := v.backend.Delete(ctx, k); err != nil && !errors.Is(err, ErrNotFound) {
			v.log.Warn("vault: delete failed", zap.String("key", k), zap.Error(err))
		}
	}
}
