package id

import "github.com/segmentio/ksuid"

// Prefixes used across the catalog.
const (
	ProductPrefix = "prod_"
	RequestPrefix = "req_"
)

// GenerateIDWithPrefix returns prefix followed by a 27 character KSUID, for
// example prod_2ArTLVPddDx8vZk7CqEbiYp1. Ids with the same prefix sort by
// creation time.
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}

// NewProductID returns a fresh product identifier.
func NewProductID() string {
	return GenerateIDWithPrefix(ProductPrefix)
}

// NewRequestID returns a fresh identifier for outbound catalog requests.
func NewRequestID() string {
	return GenerateIDWithPrefix(RequestPrefix)
}
