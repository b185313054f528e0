// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Extractor: Turns raw bytes of one format into plain text
//   - ExtractorRegistry: Selects the appropriate extractor
//   - DocumentLoader: Resolves a path into a loaded Document
//   - TextProcessor, TextPipeline: Rewrite extracted text
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
