// Package domain defines the core domain models for Soul Forge.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling: the token manifest, the
// supply unit converter, the operation lifecycle, and the error
// taxonomy shared by every layer above.
package domain
