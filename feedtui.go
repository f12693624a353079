// Package feedtui provides a personal terminal dashboard over
// heterogeneous feeds. Its core recovers historical social posts from
// a public web archive: it queries the archive's capture index,
// filters captures down to genuine post-detail pages, fetches each
// capture with bounded concurrency, and extracts the original text
// from archived HTML using a cascade of strategies.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. goquery/,
// http/, trafilatura/); pipeline orchestration lives in wayback/.
package feedtui
