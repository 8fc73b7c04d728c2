// Package domain defines the core business entities of the Sinalize API:
// users, topic-scoped content collections, bilingual content items, and
// study roadmaps.
package domain
