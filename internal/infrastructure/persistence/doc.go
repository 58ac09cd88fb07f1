// Package persistence stores RSA key records with GORM on SQLite or PostgreSQL.
package persistence
