// Package customer defines the Customer entity used by entitycheck together
// with its validator and its YAML/JSON record form.
package customer
