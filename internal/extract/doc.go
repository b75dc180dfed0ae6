// Package extract implements the deterministic, side-effect-free HTML
// extractors that turn a fetched page into typed evidence: JSON-LD blocks,
// Open Graph tags, social and review links, a resolved logo URL, and CTA
// button candidates. Extractors never make network calls and never fail on
// malformed input; absent data yields empty values.
package extract
