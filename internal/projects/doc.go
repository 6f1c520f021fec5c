// Package projects aggregates project directories (metadata.json plus
// optional logo and illustration images) into tag buckets.
package projects
