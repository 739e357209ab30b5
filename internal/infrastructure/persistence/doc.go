// Package persistence provides the GORM-backed implementations of the domain
// repositories together with the database connection factory. Domain entities
// are mapped onto infrastructure models so that GORM concerns stay out of the
// domain packages.
package persistence
