package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/store"
)

// banKeyPrefix namespaces runtime bans in the key-value store.
const banKeyPrefix = "moderation:ban"

// Moderation defines the interface for moderation lookups. The registry is a
// static JSON blocklist overlaid with runtime bans kept in the key-value
// store, so an admin ban in one process is visible to all after Reload.
//
//go:generate mockgen -source=moderation.go -destination=../mocks/moderation_registry.go -package=mocks -mock_names=Moderation=MockModerationRegistry
type Moderation interface {
	// IsAddressBlocked checks if a wallet address is blocked on a blockchain
	IsAddressBlocked(blockchain domain.Blockchain, address string) bool

	// IsRefBlocked checks if an on-chain token reference is blocked
	IsRefBlocked(ref domain.NFTRef) bool

	// Reload refreshes the runtime ban overlay from the key-value store
	Reload(ctx context.Context) error
}

// ModerationData represents the structure of the blocklist JSON file
type ModerationData struct {
	// Addresses maps blockchain name to blocked wallet addresses
	Addresses map[string][]string `json:"addresses"`
	// Refs lists blocked token references (chain:contract:serial)
	Refs []string `json:"refs"`
}

// moderationRegistry is the internal implementation of Moderation
type moderationRegistry struct {
	store store.Store

	mu sync.RWMutex
	// static entries from the blocklist file, never mutated after load
	fileAddresses map[string]bool // "blockchain:address"
	fileRefs      map[string]bool
	// runtime bans pulled from the key-value store on Reload
	banned map[string]bool // "blockchain:address"
}

// ModerationLoader defines the interface for loading the moderation registry
//
//go:generate mockgen -source=moderation.go -destination=../mocks/moderation_registry.go -package=mocks -mock_names=ModerationLoader=MockModerationLoader
type ModerationLoader interface {
	// Load reads the blocklist file and primes the runtime ban overlay
	Load(ctx context.Context, filePath string) (Moderation, error)
}

// moderationLoader is the internal implementation of ModerationLoader
type moderationLoader struct {
	fs    adapter.FileSystem
	json  adapter.JSON
	store store.Store
}

// NewModerationLoader creates a loader with injected dependencies
func NewModerationLoader(fs adapter.FileSystem, json adapter.JSON, s store.Store) ModerationLoader {
	return &moderationLoader{
		fs:    fs,
		json:  json,
		store: s,
	}
}

// Load reads the blocklist file, builds the lookup maps, and primes the
// runtime ban overlay from the key-value store. An empty filePath loads an
// empty static blocklist, leaving only runtime bans in effect.
func (l *moderationLoader) Load(ctx context.Context, filePath string) (Moderation, error) {
	reg := &moderationRegistry{
		store:         l.store,
		fileAddresses: make(map[string]bool),
		fileRefs:      make(map[string]bool),
		banned:        make(map[string]bool),
	}

	if filePath != "" {
		data, err := l.fs.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read blocklist file: %w", err)
		}

		var blocklist ModerationData
		if err := l.json.Unmarshal(data, &blocklist); err != nil {
			return nil, fmt.Errorf("failed to parse blocklist JSON: %w", err)
		}

		for blockchain, addresses := range blocklist.Addresses {
			for _, addr := range addresses {
				reg.fileAddresses[addressKey(domain.Blockchain(strings.ToLower(blockchain)), addr)] = true
			}
		}
		for _, ref := range blocklist.Refs {
			reg.fileRefs[strings.ToLower(ref)] = true
		}
	}

	if err := reg.Reload(ctx); err != nil {
		return nil, err
	}

	return reg, nil
}

// IsAddressBlocked checks the static blocklist and the runtime ban overlay
func (r *moderationRegistry) IsAddressBlocked(blockchain domain.Blockchain, address string) bool {
	if r == nil {
		return false
	}
	key := addressKey(blockchain, address)

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fileAddresses[key] || r.banned[key]
}

// IsRefBlocked checks if a token reference is on the static blocklist
func (r *moderationRegistry) IsRefBlocked(ref domain.NFTRef) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fileRefs[strings.ToLower(ref.String())]
}

// Reload replaces the runtime ban overlay with the key-value store's
// current ban set
func (r *moderationRegistry) Reload(ctx context.Context) error {
	entries, err := r.store.GetAllKeyValuesByPrefix(ctx, banKeyPrefix+":")
	if err != nil {
		return fmt.Errorf("failed to load runtime bans: %w", err)
	}

	banned := make(map[string]bool, len(entries))
	for key, value := range entries {
		if value != "1" {
			continue
		}
		banned[strings.TrimPrefix(key, banKeyPrefix+":")] = true
	}

	r.mu.Lock()
	r.banned = banned
	r.mu.Unlock()
	return nil
}

// PublishBan records or clears a runtime ban in the key-value store so every
// process converges on the next Reload. The admin ban endpoint calls this
// after flipping the user row.
func PublishBan(ctx context.Context, s store.Store, blockchain domain.Blockchain, address string, banned bool) error {
	key := fmt.Sprintf("%s:%s", banKeyPrefix, addressKey(blockchain, address))
	value := "0"
	if banned {
		value = "1"
	}
	if err := s.SetKeyValue(ctx, key, value); err != nil {
		return fmt.Errorf("failed to publish ban: %w", err)
	}
	return nil
}

// addressKey normalizes a (blockchain, address) pair into a lookup key
func addressKey(blockchain domain.Blockchain, address string) string {
	return fmt.Sprintf("%s:%s", blockchain, strings.ToLower(strings.TrimSpace(address)))
}
