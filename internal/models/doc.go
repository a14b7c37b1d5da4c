// Package models defines the core domain models for Insama.
//
// # Model groups
//
//   - Card: a household task template with Think/Plan/Do ownership slots
//   - Bill: a recurring household expense with a responsibility assignment
//   - Couple / CheckInSession: the single-couple flow and its rituals
//   - CollaborativeSession / PartnerResponse / Conflict: the two-partner
//     collaborative setup flow with conflict detection and resolution
//
// Partners are identified by the fixed tags "partner1" and "partner2"
// within a couple or session; the Partner struct carries display data only.
//
// # Design principles
//
//  1. Aggregates serialize to JSON wholesale: a session is saved and loaded
//     as one document, never patched field by field.
//  2. Relationships use ID strings, not pointers, to avoid cycles.
//  3. Resolution payloads are typed per conflict kind (no untyped blobs);
//     see CustomValue.
package models
