// Package observability provides hooks for game events.
//
// This package enables optional instrumentation (logging, sound cues,
// metrics) without the game loop depending on any of them. Consumers
// register hooks at startup; the game calls them as events happen.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, which keeps the game
// packages free of import cycles and backend dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGameHooks(&myGameHooks{})
//	    // ... run application
//	}
//
// The game emits events:
//
//	observability.Game().OnSpawn(ctx, gameID, "line")
//	observability.Game().OnLand(ctx, gameID, "floor", 1)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Game Hooks
// =============================================================================

// GameHooks receives events from a running game.
type GameHooks interface {
	// OnSpawn records a new falling piece.
	OnSpawn(ctx context.Context, gameID, kind string)

	// OnLand records a piece merging into the settled cells. reason is
	// "floor" or "block"; cleared is the number of rows removed.
	OnLand(ctx context.Context, gameID, reason string, cleared int)

	// OnGameOver records the end of a game.
	OnGameOver(ctx context.Context, gameID string, pieces, lines int, duration time.Duration)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopGameHooks is a no-op implementation of GameHooks.
type NoopGameHooks struct{}

func (NoopGameHooks) OnSpawn(context.Context, string, string)                      {}
func (NoopGameHooks) OnLand(context.Context, string, string, int)                  {}
func (NoopGameHooks) OnGameOver(context.Context, string, int, int, time.Duration) {}

// =============================================================================
// Fan-out
// =============================================================================

// MultiGameHooks forwards every event to each hook in order.
type MultiGameHooks []GameHooks

func (m MultiGameHooks) OnSpawn(ctx context.Context, gameID, kind string) {
	for _, h := range m {
		h.OnSpawn(ctx, gameID, kind)
	}
}

func (m MultiGameHooks) OnLand(ctx context.Context, gameID, reason string, cleared int) {
	for _, h := range m {
		h.OnLand(ctx, gameID, reason, cleared)
	}
}

func (m MultiGameHooks) OnGameOver(ctx context.Context, gameID string, pieces, lines int, d time.Duration) {
	for _, h := range m {
		h.OnGameOver(ctx, gameID, pieces, lines, d)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gameHooks GameHooks = NoopGameHooks{}
	hooksMu   sync.RWMutex
)

// SetGameHooks registers custom game hooks.
// This should be called once at application startup before any game starts.
func SetGameHooks(h GameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gameHooks = h
	}
}

// Game returns the registered game hooks.
func Game() GameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gameHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gameHooks = NoopGameHooks{}
}
