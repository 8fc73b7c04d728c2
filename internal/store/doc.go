// Package store defines the persistence interfaces for the application's
// entity tree (User -> Collection -> ContentItem, User -> Roadmap) and the
// shared transaction helper. Concrete implementations live in
// internal/platform/postgres.
package store
