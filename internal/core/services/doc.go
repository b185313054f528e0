// Package services implements the driving port interfaces.
// Services contain the comparison logic and orchestrate
// calls to driven ports (adapters).
package services
