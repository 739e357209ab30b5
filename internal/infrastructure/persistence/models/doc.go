// Package models contains the GORM database models. They mirror the domain
// entities and provide the mapping in both directions.
package models
